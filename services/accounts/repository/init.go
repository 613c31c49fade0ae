package repository

import (
	"fmt"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/database"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// AccountRepo implements accounts.AccountRepo over Postgres and Redis
type AccountRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewAccountRepo creates a new account repository instance
func NewAccountRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *AccountRepo {
	return &AccountRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

type accountTable struct {
	name    string
	columns string
}

const accountColumns = `id, name, email, contact, %s, password_hash,
	is_email_verified, email_otp, email_otp_expires_at,
	is_contact_verified, contact_otp, contact_otp_expires_at, created_at`

// Admins have no username; the column is projected empty so both kinds scan alike.
var accountTables = map[models.Kind]accountTable{
	models.KindAdmin:   {name: "admins", columns: fmt.Sprintf(accountColumns, "'' AS username")},
	models.KindStudent: {name: "students", columns: fmt.Sprintf(accountColumns, "username")},
}

type channelColumns struct {
	identifier string
	otp        string
	expiresAt  string
	verified   string
}

var channelTable = map[models.Channel]channelColumns{
	models.ChannelEmail:   {identifier: "email", otp: "email_otp", expiresAt: "email_otp_expires_at", verified: "is_email_verified"},
	models.ChannelContact: {identifier: "contact", otp: "contact_otp", expiresAt: "contact_otp_expires_at", verified: "is_contact_verified"},
}

func tableFor(kind models.Kind) (accountTable, error) {
	t, ok := accountTables[kind]
	if !ok {
		return accountTable{}, fmt.Errorf("unknown account kind %q", kind)
	}
	return t, nil
}

func columnsFor(channel models.Channel) (channelColumns, error) {
	c, ok := channelTable[channel]
	if !ok {
		return channelColumns{}, fmt.Errorf("unknown channel %q", channel)
	}
	return c, nil
}
