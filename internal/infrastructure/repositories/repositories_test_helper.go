package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createCreatorTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE creators (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		state TEXT NOT NULL,
		country TEXT,
		payouts_paused BOOLEAN NOT NULL DEFAULT 0,
		deauth_email_enabled BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE terms_agreements (
		id TEXT PRIMARY KEY,
		creator_id TEXT NOT NULL,
		accepted_at DATETIME NOT NULL,
		ip TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createComplianceTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE compliance_profiles (
		id TEXT PRIMARY KEY,
		creator_id TEXT NOT NULL,
		entity_type TEXT NOT NULL,
		country TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		business_name TEXT,
		business_structure TEXT,
		street_address TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT,
		zip_code TEXT NOT NULL,
		phone TEXT,
		email TEXT,
		tax_id TEXT,
		date_of_birth DATETIME,
		job_title TEXT,
		ownership_percent REAL,
		first_name_kana TEXT,
		last_name_kana TEXT,
		first_name_kanji TEXT,
		last_name_kanji TEXT,
		building_number TEXT,
		street_address_kana TEXT,
		street_address_kanji TEXT,
		current BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE compliance_info_requests (
		id TEXT PRIMARY KEY,
		creator_id TEXT NOT NULL,
		merchant_account_id TEXT NOT NULL,
		field TEXT NOT NULL,
		partial BOOLEAN NOT NULL DEFAULT 0,
		due_at DATETIME,
		state TEXT NOT NULL,
		vendor_error_code TEXT,
		vendor_error_reason TEXT,
		last_emailed_at DATETIME,
		email_count INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createMerchantAccountTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE merchant_accounts (
		id TEXT PRIMARY KEY,
		creator_id TEXT NOT NULL,
		processor TEXT NOT NULL,
		vendor_account_id TEXT NOT NULL UNIQUE,
		country TEXT NOT NULL,
		currency TEXT NOT NULL,
		charge_processor_verified_at DATETIME,
		charges_enabled BOOLEAN NOT NULL DEFAULT 0,
		payouts_enabled BOOLEAN NOT NULL DEFAULT 0,
		requested_capabilities TEXT,
		synced_profile_id TEXT,
		synced_bank_account_id TEXT,
		deauthorized_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE bank_account_records (
		id TEXT PRIMARY KEY,
		creator_id TEXT NOT NULL,
		country TEXT NOT NULL,
		currency TEXT NOT NULL,
		account_number TEXT NOT NULL,
		routing_number TEXT,
		account_holder_name TEXT,
		account_type TEXT,
		vendor_bank_account_id TEXT,
		fingerprint TEXT,
		active BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createProductTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE products (
		id TEXT PRIMARY KEY,
		seller_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		price_cents INTEGER NOT NULL DEFAULT 0,
		currency TEXT NOT NULL,
		published BOOLEAN NOT NULL DEFAULT 0,
		adult BOOLEAN NOT NULL DEFAULT 0,
		affiliate_enabled BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE webhook_events (
		id TEXT PRIMARY KEY,
		vendor_event_id TEXT NOT NULL UNIQUE,
		event_type TEXT NOT NULL,
		payload TEXT,
		created_at DATETIME
	);`)
}
