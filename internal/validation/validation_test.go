package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fcja/agendamentos/internal/domain"
)

func TestValidEmail(t *testing.T) {
	valid := []string{
		"a@b.c",
		"maria.silva@fcja.pb.gov.br",
		"joão@exemplo.com",
		"x+tag@dominio.co",
	}
	for _, s := range valid {
		assert.True(t, ValidEmail(s), "expected valid: %q", s)
	}

	invalid := []string{
		"",
		"semarroba.com",
		"a@b",           // no dot after the @
		"a@@b.c",        // second @
		"a b@c.d",       // whitespace in local part
		"a@b c.d",       // whitespace in host
		"a@b.",          // nothing after the dot
		"@b.c",          // empty local part
		"a@.c",          // empty host before the dot
		"nome@dominio.", // trailing dot
	}
	for _, s := range invalid {
		assert.False(t, ValidEmail(s), "expected invalid: %q", s)
	}
}

func TestValidPhone(t *testing.T) {
	valid := []string{
		"(83) 99999-8888",
		"83 99999-8888",
		"83999998888",
		"(83)99999-8888",
		"83 3218-0000",
		"8332180000",
		"+55 83 99999-8888",
		"55 83 99999-8888",
		"  (83) 99999-8888  ", // trimmed before matching
	}
	for _, s := range valid {
		assert.True(t, ValidPhone(s), "expected valid: %q", s)
	}

	invalid := []string{
		"",
		"123",           // too short under the strict policy
		"00000000",      // no area code
		"99999-8888",    // missing area code
		"(8) 9999-8888", // 1-digit area code
		"(832) 99999-8888",
		"telefone",
		"83 99999 8888", // space instead of hyphen between prefix and suffix
	}
	for _, s := range invalid {
		assert.False(t, ValidPhone(s), "expected invalid: %q", s)
	}
}

func TestParseDate(t *testing.T) {
	iso, err := ParseDate("2025-09-16")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC), iso)

	br, err := ParseDate("16/09/2025")
	require.NoError(t, err)
	assert.Equal(t, iso, br)

	_, err = ParseDate("16-09-2025")
	assert.Error(t, err)
	_, err = ParseDate("")
	assert.Error(t, err)
	_, err = ParseDate("2025-13-40")
	assert.Error(t, err)
}

func TestValidVisitDate(t *testing.T) {
	// 2025-09-15 is a Monday; the site is closed for walk-in visits.
	assert.False(t, ValidVisitDate("2025-09-15"))
	// Tuesday through Sunday are open.
	for day := 16; day <= 21; day++ {
		s := time.Date(2025, 9, day, 0, 0, 0, 0, time.UTC).Format(domain.DateFormat)
		assert.True(t, ValidVisitDate(s), "expected open on %s", s)
	}
	// BR format follows the same rule.
	assert.False(t, ValidVisitDate("15/09/2025"))
	assert.True(t, ValidVisitDate("16/09/2025"))
	// Unparseable input is rejected, not panicked on.
	assert.False(t, ValidVisitDate("not-a-date"))
	assert.False(t, ValidVisitDate(""))
}

func TestValidResearchDate(t *testing.T) {
	// 2025-09-19 is a Friday, 2025-09-20 a Saturday.
	assert.True(t, ValidResearchDate("2025-09-19"))
	assert.False(t, ValidResearchDate("2025-09-20"))
	assert.False(t, ValidResearchDate("2025-09-21")) // Sunday
	assert.True(t, ValidResearchDate("2025-09-15"))  // Monday
	assert.False(t, ValidResearchDate(""))
}

// Every calendar day must be accepted by at least one of the two predicates,
// and Monday only by the research rule.
func TestDateRulesCoverTheWeek(t *testing.T) {
	start := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC) // Monday
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		s := d.Format(domain.DateFormat)
		visit := ValidVisitDate(s)
		research := ValidResearchDate(s)
		assert.True(t, visit || research, "no category accepts %s", s)
		if d.Weekday() == time.Monday {
			assert.False(t, visit)
			assert.True(t, research)
		}
	}
}

func TestNormalizeShift(t *testing.T) {
	for _, s := range []string{"manhã", "manha", "MANHA", "Manhã", "  manha  "} {
		got, ok := NormalizeShift(s)
		require.True(t, ok, "expected match: %q", s)
		assert.Equal(t, domain.ShiftMorning, got)
	}

	got, ok := NormalizeShift("TARDE")
	require.True(t, ok)
	assert.Equal(t, domain.ShiftAfternoon, got)

	for _, s := range []string{"", "noite", "madrugada", "manh", "tardes"} {
		_, ok := NormalizeShift(s)
		assert.False(t, ok, "expected no match: %q", s)
	}
}

// Normalizing an already-normalized value returns the same value.
func TestNormalizeShiftIdempotent(t *testing.T) {
	for _, s := range []domain.Shift{domain.ShiftMorning, domain.ShiftAfternoon} {
		got, ok := NormalizeShift(string(s))
		require.True(t, ok)
		assert.Equal(t, s, got)
	}
}
