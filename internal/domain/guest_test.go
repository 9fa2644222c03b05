package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGuestRequiresNameAndCode(t *testing.T) {
	require.Nil(t, NewGuest("", "abc123", 2, false))
	require.Nil(t, NewGuest("   ", "abc123", 2, false))
	require.Nil(t, NewGuest("Иван Иванов", "", 2, false))
	require.Nil(t, NewGuest("Иван Иванов", "  ", 2, false))

	guest := NewGuest(" Иван Иванов ", " abc123 ", 2, true)
	require.NotNil(t, guest)
	require.Equal(t, "Иван Иванов", guest.Name)
	require.Equal(t, "abc123", guest.Code)
	require.True(t, guest.Confirmed)
}

func TestGuestPlural(t *testing.T) {
	require.True(t, NewGuest("Иван и Мария", "a", 2, false).Plural())
	require.True(t, NewGuest("Иван Иванов", "a", 2, false).Plural())
	require.False(t, NewGuest("Иван", "a", 2, false).Plural())

	var nilGuest *Guest
	require.False(t, nilGuest.Plural())
}

func TestSurveyAnswersPruned(t *testing.T) {
	answers := SurveyAnswers{
		"withPartner": "Да",
		"alcohol":     "  вино  ",
		"transfer":    "",
		"food":        "   ",
	}

	pruned := answers.Pruned()

	require.Equal(t, SurveyAnswers{"withPartner": "Да", "alcohol": "вино"}, pruned)
	// The original map is untouched.
	require.Len(t, answers, 4)
}
