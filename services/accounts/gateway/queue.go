package gateway

import (
	"fmt"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/constants"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
)

// Publisher publishes JSON messages to a topic
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// TopicFor returns the NSQ topic carrying a channel's codes
func TopicFor(channel models.Channel) string {
	if channel == models.ChannelEmail {
		return constants.TopicOTPEmail
	}
	return constants.TopicOTPSMS
}

func (g *AccountGW) publish(channel models.Channel, recipient, code string) error {
	if g.publisher == nil {
		return fmt.Errorf("nsq publisher not configured")
	}

	return g.publisher.Publish(TopicFor(channel), &models.OTPNotification{
		Channel:   channel,
		Recipient: recipient,
		Code:      code,
	})
}
