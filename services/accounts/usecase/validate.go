package usecase

import (
	"strings"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/utils"
	"github.com/chetanshingare9301/Exam-Management-System/services/accounts"
)

// normalizeRegistration trims and validates a registration in place
func normalizeRegistration(kind models.Kind, req *models.RegisterRequest) error {
	if !kind.Valid() {
		return accounts.InvalidInput("unknown account kind")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = utils.NormalizeEmail(req.Email)
	req.Contact = utils.CleanContact(req.Contact)
	req.Username = strings.TrimSpace(req.Username)

	switch {
	case req.Name == "":
		return accounts.InvalidInput("name is required")
	case req.Password == "":
		return accounts.InvalidInput("password is required")
	case !utils.IsValidEmail(req.Email):
		return accounts.InvalidInput("email is invalid")
	case !utils.IsValidPhoneNumber(req.Contact):
		return accounts.InvalidInput("contact is invalid")
	}

	if kind == models.KindStudent && !utils.IsValidUsername(req.Username) {
		return accounts.InvalidInput("username is invalid")
	}
	return nil
}

// normalizeIdentifier brings a channel identifier to its stored form
func normalizeIdentifier(channel models.Channel, identifier string) string {
	if channel == models.ChannelEmail {
		return utils.NormalizeEmail(identifier)
	}
	return utils.CleanContact(identifier)
}
