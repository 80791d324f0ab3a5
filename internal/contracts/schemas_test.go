package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validAdApprovedBody() []byte {
	return []byte(`{
		"ad_type": "car",
		"ad_id": 17,
		"telegram_id": 123456789,
		"title": "BMW X5 2018",
		"price": 25000,
		"city": "Минск",
		"approved_at": "2025-06-01T12:00:00Z"
	}`)
}

func TestValidateAdApprovedEvent(t *testing.T) {
	err := ValidateEvent("AdApprovedEvent", "1.0.0", validAdApprovedBody())
	assert.NoError(t, err)
}

func TestValidateRejectsMissingRequiredField(t *testing.T) {
	body := []byte(`{
		"ad_type": "plate",
		"ad_id": 5,
		"title": "А777АА",
		"price": 3000,
		"city": "Минск"
	}`)
	err := ValidateEvent("AdApprovedEvent", "1.0.0", body)
	assert.Error(t, err)
}

func TestValidateRejectsUnknownAdType(t *testing.T) {
	body := []byte(`{
		"ad_type": "boat",
		"ad_id": 1,
		"title": "x",
		"price": 1,
		"city": "Минск",
		"approved_at": "2025-06-01T12:00:00Z"
	}`)
	err := ValidateEvent("AdApprovedEvent", "1.0.0", body)
	assert.Error(t, err)
}

func TestValidateRejectsExtraProperties(t *testing.T) {
	body := []byte(`{
		"ad_type": "car",
		"ad_id": 1,
		"title": "x",
		"price": 1,
		"city": "Минск",
		"approved_at": "2025-06-01T12:00:00Z",
		"color": "red"
	}`)
	err := ValidateEvent("AdApprovedEvent", "1.0.0", body)
	assert.Error(t, err)
}

func TestValidateUnknownEventType(t *testing.T) {
	err := ValidateEvent("NoSuchEvent", "1.0.0", []byte(`{}`))
	assert.Error(t, err)
}

func TestValidateMalformedJSON(t *testing.T) {
	err := ValidateEvent("AdApprovedEvent", "1.0.0", []byte(`{not json`))
	assert.Error(t, err)
}

func TestGenerateKeyFromPath(t *testing.T) {
	assert.Equal(t, "AdApprovedEvent/1.0.0", generateKeyFromPath("schemas/events/ad-approved/v1.json"))
	assert.Equal(t, "", generateKeyFromPath("schemas/events/orphan.json"))
}
