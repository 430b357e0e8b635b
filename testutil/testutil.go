// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/enquetes/cliparse"
	"github.com/danielhkuo/enquetes/db"
)

// TestDBURLEnv names the variable holding the integration database URL.
// Tests needing a live database are skipped when it is unset.
const TestDBURLEnv = "TEST_DATABASE_URL"

// SetupTestDB connects to the integration database and recreates the schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv(TestDBURLEnv)
	if url == "" {
		t.Skipf("%s not set, skipping database test", TestDBURLEnv)
	}

	cfg := GetTestConfig()
	cfg.DatabaseURL = url

	conn, err := db.Open(context.Background(), cfg)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { conn.Close() })

	_, err = conn.Exec(`
		DROP TABLE IF EXISTS sys_enquete_voto CASCADE;
		DROP TABLE IF EXISTS sys_enquete_opcoes CASCADE;
		DROP TABLE IF EXISTS sys_enquete CASCADE;
		DROP TABLE IF EXISTS sys_usuario CASCADE;
	`)
	require.NoError(t, err, "failed to clean database")

	require.NoError(t, db.CreateSchema(context.Background(), conn))

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           5000,
		DatabaseURL:    os.Getenv(TestDBURLEnv),
		DatabaseDriver: cliparse.DriverPostgres,
		LogLevel:       "debug",
	}
}

// CreateTestUser inserts a user row and returns its id
func CreateTestUser(t *testing.T, conn *sql.DB, name, email string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO sys_usuario (usu_no_nome, usu_no_email)
		VALUES ($1, $2)
		RETURNING usu_co_usuario
	`, name, email).Scan(&id)
	require.NoError(t, err, "failed to create test user")

	return id
}

// CountRows returns the number of rows in table matching the poll id
func CountRows(t *testing.T, conn *sql.DB, table string, pollID int64) int {
	t.Helper()

	var n int
	err := conn.QueryRow(`SELECT COUNT(*) FROM `+table+` WHERE enq_co_enquete = $1`, pollID).Scan(&n)
	require.NoError(t, err, "failed to count rows in %s", table)

	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
