package validator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/enroll/pkg/validator"
)

func TestPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		want     validator.Verdict
	}{
		{"lowercase and digits", "abc123", validator.Pass()},
		{"upper and lower", "AbcDef", validator.Pass()},
		{"all three classes", "Abc123", validator.Pass()},
		{"upper and digits at max length", "ABCDE12345", validator.Pass()},
		{"empty", "", validator.Fail(validator.ReasonPasswordRequired)},
		{"digits only", "123456", validator.Fail(validator.ReasonPasswordCombination)},
		{"lowercase only", "abcdefg", validator.Fail(validator.ReasonPasswordCombination)},
		{"symbols do not count", "!!!aaa", validator.Fail(validator.ReasonPasswordCombination)},
		{"too short", "Abc12", validator.Fail(validator.ReasonPasswordLength)},
		{"too long", "Abc1234567x", validator.Fail(validator.ReasonPasswordLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.Password(tt.password))
		})
	}
}

func TestEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, validator.Pass(), validator.Email("test@example.com"))
	assert.Equal(t, validator.Pass(), validator.Email("a.b@sub.example.co.kr"))

	assert.Equal(t, validator.Fail(validator.ReasonEmailRequired), validator.Email(""))
	for _, email := range []string{
		"testexample.com", "test@", "test@example", "te st@example.com", "a@b@c.com", "test@exa mple.com",
		"a\u3000b@example.com", "a\vb@example.com", "a\u00a0b@example.com", "a@example.com\ufeff",
	} {
		assert.Equal(t, validator.Fail(validator.ReasonEmailFormat), validator.Email(email), email)
	}
}

func TestPhone(t *testing.T) {
	t.Parallel()

	assert.Equal(t, validator.Pass(), validator.Phone("010-1234-5678"))

	assert.Equal(t, validator.Fail(validator.ReasonPhoneRequired), validator.Phone(""))
	for _, phone := range []string{"01012345678", "011-1234-5678", "010-123-5678", "010-1234-56789", " 010-1234-5678"} {
		assert.Equal(t, validator.Fail(validator.ReasonPhoneFormat), validator.Phone(phone), phone)
	}
}

func TestName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, validator.Pass(), validator.Name("김"))
	assert.Equal(t, validator.Pass(), validator.Name("홍길동"))
	assert.Equal(t, validator.Pass(), validator.Name("가나다라마바사아자차카타파하가나다라마바"))

	assert.Equal(t, validator.Fail(validator.ReasonNameRequired), validator.Name(""))
	assert.Equal(t, validator.Fail(validator.ReasonNameRequired), validator.Name("   "))
	assert.Equal(t, validator.Fail(validator.ReasonNameLength), validator.Name("abcdefghijklmnopqrstu"))
}

func TestRequired(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.Required("title", "required").OK)
	assert.Equal(t, validator.Fail("required"), validator.Required(" \t", "required"))
}

func TestNumber(t *testing.T) {
	t.Parallel()

	t.Run("below min", func(t *testing.T) {
		v := validator.Number(5, validator.Min(10))
		assert.False(t, v.OK)
		assert.Equal(t, "값은(는) 10 이상이어야 합니다.", v.Reason)
	})

	t.Run("above max", func(t *testing.T) {
		v := validator.Number(150, validator.Max(100))
		assert.False(t, v.OK)
		assert.Equal(t, "값은(는) 100 이하여야 합니다.", v.Reason)
	})

	t.Run("not a number", func(t *testing.T) {
		v := validator.Number(math.NaN())
		assert.False(t, v.OK)
		assert.Equal(t, "값은(는) 숫자여야 합니다.", v.Reason)
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		assert.True(t, validator.Number(1, validator.Min(1), validator.Max(100)).OK)
		assert.True(t, validator.Number(100, validator.Min(1), validator.Max(100)).OK)
	})

	t.Run("no bounds", func(t *testing.T) {
		assert.True(t, validator.Number(-1e9).OK)
	})

	t.Run("label and large bound", func(t *testing.T) {
		v := validator.Number(1000001, validator.Min(0), validator.Max(1000000), validator.Label("가격"))
		assert.Equal(t, "가격은(는) 1000000 이하여야 합니다.", v.Reason)
	})

	t.Run("min checked before max", func(t *testing.T) {
		v := validator.Number(0, validator.Min(1), validator.Max(-1), validator.Label("최대 수강 인원"))
		assert.Equal(t, "최대 수강 인원은(는) 1 이상이어야 합니다.", v.Reason)
	})
}

func TestParseNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, float64(0), validator.ParseNumber(""))
	assert.Equal(t, float64(0), validator.ParseNumber("   "))
	assert.Equal(t, float64(12), validator.ParseNumber(" 12 "))
	assert.Equal(t, 1.5, validator.ParseNumber("1.5"))
	assert.Equal(t, float64(-3), validator.ParseNumber("-3"))
	assert.True(t, math.IsNaN(validator.ParseNumber("abc")))
	assert.True(t, math.IsNaN(validator.ParseNumber("12원")))

	t.Run("separators and special words", func(t *testing.T) {
		for _, in := range []string{"1_000", "inf", "-inf", "Inf", "infinity", "NaN", "nan", "+-Infinity"} {
			assert.True(t, math.IsNaN(validator.ParseNumber(in)), in)
		}
		assert.True(t, math.IsInf(validator.ParseNumber("Infinity"), 1))
		assert.True(t, math.IsInf(validator.ParseNumber("-Infinity"), -1))
		assert.Equal(t, float64(1000), validator.ParseNumber("1e3"))
	})

	t.Run("digit separator is not a number", func(t *testing.T) {
		v := validator.Number(validator.ParseNumber("1_000"), validator.Max(100), validator.Label("가격"))
		assert.Equal(t, "가격은(는) 숫자여야 합니다.", v.Reason)
	})
}
