package digest

import (
	"fmt"
	"strings"
	"time"

	"PantryTrack/entities"
	"PantryTrack/internal/utils/mailing"
	"PantryTrack/pkg/views"
)

type (
	DigestService interface {
		// BuildDigest renders the expiry digest. ok is false when
		// nothing is expired or expiring soon.
		BuildDigest(foods []entities.FoodItem, today time.Time) (subject, body string, ok bool)
		SendDigest(foods []entities.FoodItem, today time.Time, recipient string) (bool, error)
	}

	digestService struct {
		sendMail func(to, subject, body string) error
	}
)

func NewDigestService() DigestService {
	return &digestService{sendMail: mailing.SendMail}
}

func (s *digestService) BuildDigest(foods []entities.FoodItem, today time.Time) (string, string, bool) {
	expired := views.Expired(foods, today)
	soon := views.ExpiringSoon(foods, today, views.DefaultExpiryWindowDays)
	if len(expired) == 0 && len(soon) == 0 {
		return "", "", false
	}

	stats := views.Summarize(foods, today)
	subject := fmt.Sprintf("Pantry digest: %d expired, %d expiring soon", stats.Expired, stats.Warning)

	var b strings.Builder
	b.WriteString("<h2>Pantry expiry digest</h2>")
	b.WriteString(fmt.Sprintf("<p>%d items tracked, %d safe.</p>", stats.Total, stats.Safe))

	if len(expired) > 0 {
		b.WriteString("<h3>Already expired</h3><ul>")
		for _, item := range expired {
			b.WriteString(fmt.Sprintf("<li>%s (%g %s), expired %s</li>",
				item.Name, item.Quantity, item.Unit, item.ExpiryDate.Format("2006-01-02")))
		}
		b.WriteString("</ul>")
	}

	if len(soon) > 0 {
		b.WriteString("<h3>Expiring soon</h3><ul>")
		for _, item := range soon {
			days := views.DaysUntilExpiry(item, today)
			b.WriteString(fmt.Sprintf("<li>%s (%g %s), %s</li>",
				item.Name, item.Quantity, item.Unit, describeDays(days)))
		}
		b.WriteString("</ul>")
	}

	return subject, b.String(), true
}

// SendDigest mails the digest and reports whether anything was sent.
func (s *digestService) SendDigest(foods []entities.FoodItem, today time.Time, recipient string) (bool, error) {
	subject, body, ok := s.BuildDigest(foods, today)
	if !ok {
		return false, nil
	}
	if err := s.sendMail(recipient, subject, body); err != nil {
		return false, err
	}
	return true, nil
}

func describeDays(days int) string {
	switch days {
	case 0:
		return "expires today"
	case 1:
		return "expires tomorrow"
	default:
		return fmt.Sprintf("expires in %d days", days)
	}
}
