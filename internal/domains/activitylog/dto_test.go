package activitylog

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddLogRequestValidate(t *testing.T) {
	valid := &AddLogRequest{CatID: uuid.New(), ActivityType: ActivityFeeding}
	assert.NoError(t, valid.Validate())

	missingCat := &AddLogRequest{ActivityType: ActivityFeeding}
	assert.Error(t, missingCat.Validate())

	badType := &AddLogRequest{CatID: uuid.New(), ActivityType: ActivityType("napping")}
	assert.Error(t, badType.Validate())
}

func TestToLogSanitizesNotes(t *testing.T) {
	req := &AddLogRequest{
		CatID:        uuid.New(),
		ActivityType: ActivityFeeding,
		Notes:        "  makan lahap  ",
		UserName:     "Budi",
	}

	log := req.ToLog()
	require.NotNil(t, log.Notes)
	assert.Equal(t, "makan lahap", *log.Notes)
	assert.Equal(t, "Budi", log.UserName)
}

func TestToLogEmptyNotesBecomeNil(t *testing.T) {
	req := &AddLogRequest{
		CatID:        uuid.New(),
		ActivityType: ActivityGrooming,
		Notes:        "   ",
	}

	log := req.ToLog()
	assert.Nil(t, log.Notes)
}

func TestToLogCapsNotesAtFiveHundredRunes(t *testing.T) {
	// Multibyte runes make sure the cap counts runes, not bytes.
	req := &AddLogRequest{
		CatID:        uuid.New(),
		ActivityType: ActivityOther,
		Notes:        strings.Repeat("é", 600),
	}

	log := req.ToLog()
	require.NotNil(t, log.Notes)
	assert.Equal(t, 500, utf8.RuneCountInString(*log.Notes))
}

func TestToLogUserNameDefaultsToAnonim(t *testing.T) {
	req := &AddLogRequest{
		CatID:        uuid.New(),
		ActivityType: ActivityHealthCheck,
		UserName:     "   ",
	}

	assert.Equal(t, "Anonim", req.ToLog().UserName)
}

func TestToLogCapsUserNameAtFiftyRunes(t *testing.T) {
	req := &AddLogRequest{
		CatID:        uuid.New(),
		ActivityType: ActivityFeeding,
		UserName:     strings.Repeat("a", 80),
	}

	assert.Equal(t, 50, utf8.RuneCountInString(req.ToLog().UserName))
}
