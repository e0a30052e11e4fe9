package compliance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultValidator(t *testing.T) *Validator {
	t.Helper()
	p, err := DefaultPolicy()
	require.NoError(t, err)
	v, err := New(p)
	require.NoError(t, err)
	return v
}

// TestDenylistAnyCasing ensures every denylisted term fails regardless of case.
func TestDenylistAnyCasing(t *testing.T) {
	v := defaultValidator(t)
	for _, c := range v.Policy().Denylist {
		for _, term := range c.Terms {
			for _, variant := range []string{term, strings.ToUpper(term), mixedCase(term)} {
				text := "Visit us today, " + variant + " for everyone"
				res := v.Validate(text, ContextCampaignSpec)
				assert.Equal(t, Fail, res.Status, "term %q in %q", term, text)
				assert.NotEmpty(t, res.Reasons)
			}
		}
	}
}

func TestBillInsuranceNegation(t *testing.T) {
	v := defaultValidator(t)

	cases := []struct {
		text string
		want Status
	}{
		{"We do not bill insurance.", Pass},
		{"We DON'T bill insurance, ever.", Pass},
		{"We don’t bill insurance.", Pass},
		{"We never bill insurance", Pass},
		{"We bill insurance directly.", Fail},
		{"No paperwork needed at all. We bill insurance for you.", Fail},
		{"We do not mail forms but we bill insurance", Fail},
		{"Clinics that cannot see you quickly bill insurance", Fail},
		{"Our clinics bill insurance", Fail},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			res := v.Validate(tc.text, ContextCampaignSpec)
			assert.Equal(t, tc.want, res.Status, res.Reasons)
		})
	}
}

func TestLandingPageRequiresDisclaimer(t *testing.T) {
	v := defaultValidator(t)

	res := v.Validate("Friendly doctors who know your name.", ContextLandingPage)
	require.Equal(t, Fail, res.Status)
	require.Len(t, res.Reasons, 1)
	assert.Contains(t, res.Reasons[0], "missing required disclaimer")

	res = v.Validate("Friendly doctors who know your name. Membership is not insurance.", ContextLandingPage)
	assert.Equal(t, Pass, res.Status)

	// Outside the landing page context the disclaimer is not required.
	res = v.Validate("Friendly doctors who know your name.", ContextHeadline)
	assert.Equal(t, Pass, res.Status)
}

func TestValidateIsDeterministic(t *testing.T) {
	v := defaultValidator(t)
	text := "Best care, 99% satisfaction, Ozempic on request"
	first := v.Validate(text, ContextLandingPage)
	second := v.Validate(text, ContextLandingPage)
	assert.Equal(t, first, second)
	assert.Len(t, first.Reasons, 4)
}

func TestMinimalPolicy(t *testing.T) {
	v, err := New(&Policy{
		Version:  "test",
		Denylist: []Category{{Name: "demo", Description: "demo terms", Terms: []string{"Forbidden"}}},
	})
	require.NoError(t, err)

	assert.Equal(t, Pass, v.Validate("best care anywhere", ContextLandingPage).Status)
	res := v.Validate("this is FORBIDDEN", ContextHeadline)
	assert.Equal(t, Fail, res.Status)
	assert.Equal(t, []string{`contains prohibited term "forbidden" (demo terms); remove or rephrase it`}, res.Reasons)
}

func TestSanitize(t *testing.T) {
	v := defaultValidator(t)

	cases := map[string]string{
		"24/7 access to your doctor":    "extended hours access to your doctor",
		"99% satisfaction":              "satisfaction",
		"Free Ozempic consults":         "Free consults",
		"Same-day visits, guaranteed":   "timely visits",
		"We bill insurance for you":     "We for you",
		"We do not bill insurance":      "We do not bill insurance",
		"Ozempic":                       "",
		"Instant answers from a doctor": "prompt answers from a doctor",
	}
	for in, want := range cases {
		got := v.Sanitize(in)
		assert.Equal(t, want, got, "sanitize %q", in)
		if got != "" {
			assert.True(t, v.Validate(got, ContextCampaignSpec).Passed(), "sanitized %q still fails", got)
		}
	}
}

func TestSanitizeKeepsNegatedPhraseWithTypographicApostrophe(t *testing.T) {
	v := defaultValidator(t)

	got := v.Sanitize("Others bill insurance; we don’t bill insurance")
	assert.Equal(t, "Others ; we don’t bill insurance", got)
	assert.True(t, v.Validate(got, ContextCampaignSpec).Passed())

	assert.Equal(t, "İstanbul clinics for you", v.Sanitize("İstanbul clinics bill insurance for you"))
}

func TestSanitizeListFallsBackToDefaults(t *testing.T) {
	v := defaultValidator(t)
	defaults := v.Policy().SafeDefaults.ProofPoints

	got := v.SanitizeList([]string{"99%", "Ozempic"}, defaults)
	assert.Equal(t, defaults, got)

	got = v.SanitizeList([]string{"Board-certified physicians", "Wegovy"}, defaults)
	assert.Equal(t, []string{"Board-certified physicians"}, got)
}

func TestSafeDefaultsPass(t *testing.T) {
	v := defaultValidator(t)
	d := v.Policy().SafeDefaults
	for _, s := range append(append(append([]string{}, d.Benefits...), d.ProofPoints...), d.Disclaimers...) {
		assert.True(t, v.Validate(s, ContextCampaignSpec).Passed(), s)
	}
}

func TestParsePolicyRejectsBadPattern(t *testing.T) {
	_, err := ParsePolicy([]byte("version: x\nreplacements:\n  - pattern: '('\n    replacement: y\n"))
	assert.Error(t, err)

	_, err = ParsePolicy([]byte("negations: [not]\n"))
	assert.Error(t, err)
}

func mixedCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i%2 == 0 {
			b.WriteString(strings.ToUpper(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
