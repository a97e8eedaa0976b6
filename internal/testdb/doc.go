// Package testdb provides utilities for database integration tests.
//
// Tests run inside a transaction that is rolled back when the test finishes,
// so they can share one database without cleanup:
//
//	func TestSomething(t *testing.T) {
//	    if testdb.ShouldSkipDatabaseTest() {
//	        t.Skip("DATABASE_URL not set - skipping integration test")
//	    }
//
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        acronyms := postgres.NewPostgresAcronymStore(tx, nil)
//	        // ...
//	    })
//	}
//
// The database URL is read from DATABASE_URL, falling back to TIL_TEST_DB_URL.
package testdb
