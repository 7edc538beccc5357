package yoga

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chart-interpreter/internal/chart"
	"chart-interpreter/internal/chart/charttest"
	"chart-interpreter/internal/diagnostic"
	"chart-interpreter/internal/zodiac"
)

func recordNames(records []Record) []string {
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}

	return names
}

func TestCatalogOrder(t *testing.T) {
	assert.Equal(t, []string{
		"Gaja Kesari Yoga",
		"Chandra-Mangal Yoga",
		"Budh-Aditya Yoga",
		"Guru-Mangal Yoga",
		"Shukra-Guru Yoga",
		"Ruchaka Yoga",
		"Bhadra Yoga",
		"Hamsa Yoga",
		"Malavya Yoga",
		"Sasha Yoga",
		"Neecha Bhanga Raja Yoga",
		"Kala Sarpa Dosha",
		"Kemadrum Yoga",
	}, Names())
}

func TestGajaKesari(t *testing.T) {
	snap := charttest.FromSigns(t, zodiac.Aries, map[zodiac.Planet]zodiac.Sign{
		zodiac.Moon:    zodiac.Cancer,
		zodiac.Jupiter: zodiac.Libra,
	})

	records, diags := NewDetector().Detect(snap)
	require.Equal(t, []string{"Gaja Kesari Yoga"}, recordNames(records))

	rec := records[0]
	assert.Equal(t, CategoryRaja, rec.Category)
	assert.Equal(t, Strong, rec.Strength)
	assert.Equal(t, []zodiac.Planet{zodiac.Moon, zodiac.Jupiter}, rec.Planets)
	assert.Equal(t, []string{"Cancer", "Libra"}, rec.HousesOrSigns)
	assert.Contains(t, rec.Description, "4th house from the Moon")
	assert.Nil(t, rec.Remedies)

	assert.False(t, diags.HasErrors())
	assert.NotEmpty(t, diags.WithCode(diagnostic.CodeRuleSkipped))
	assert.Empty(t, diags.WithCode(diagnostic.CodeRuleFailed))
}

func TestGajaKesariNotInKendra(t *testing.T) {
	snap := charttest.FromSigns(t, zodiac.Aries, map[zodiac.Planet]zodiac.Sign{
		zodiac.Moon:    zodiac.Cancer,
		zodiac.Jupiter: zodiac.Leo,
	})

	records, _ := NewDetector().Detect(snap)
	assert.NotContains(t, recordNames(records), "Gaja Kesari Yoga")
}

func TestConjunctions(t *testing.T) {
	snap := charttest.FromSigns(t, zodiac.Aries, map[zodiac.Planet]zodiac.Sign{
		zodiac.Sun:     zodiac.Gemini,
		zodiac.Mercury: zodiac.Gemini,
		zodiac.Moon:    zodiac.Leo,
		zodiac.Mars:    zodiac.Leo,
		zodiac.Jupiter: zodiac.Pisces,
		zodiac.Venus:   zodiac.Pisces,
	})

	records, _ := NewDetector().Detect(snap)
	assert.Equal(t, []string{
		"Chandra-Mangal Yoga",
		"Budh-Aditya Yoga",
		"Shukra-Guru Yoga",
	}, recordNames(records))
	assert.Equal(t, []string{"Leo"}, records[0].HousesOrSigns)
}

func TestHamsa(t *testing.T) {
	tests := []struct {
		name  string
		asc   float64
		jup   float64
		fires bool
	}{
		{name: "exalted in 4th", asc: 0, jup: 105, fires: true},
		{name: "own sign in 1st", asc: 245, jup: 250, fires: true},
		{name: "leo in 5th", asc: 0, jup: 123, fires: false},
		{name: "exalted in 5th", asc: 345, jup: 95, fires: false},
		{name: "kendra without dignity", asc: 0, jup: 185, fires: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := chart.NewSnapshot(tt.asc, map[zodiac.Planet]chart.PlanetInput{
				zodiac.Jupiter: {Longitude: tt.jup},
			})
			require.NoError(t, err)

			records, _ := NewDetector().Detect(snap)
			if tt.fires {
				require.Contains(t, recordNames(records), "Hamsa Yoga")
				assert.Equal(t, VeryStrong, records[0].Strength)
				assert.Equal(t, CategoryMahapurusha, records[0].Category)
			} else {
				assert.NotContains(t, recordNames(records), "Hamsa Yoga")
			}
		})
	}
}

func TestMahapurushaInFullChart(t *testing.T) {
	records, diags := NewDetector().Detect(charttest.Full(t))

	// Mars exalted in the 10th, Venus in its own sign in the 7th.
	assert.Equal(t, []string{"Ruchaka Yoga", "Malavya Yoga"}, recordNames(records))
	assert.Equal(t, []string{"house 10", "Capricorn"}, records[0].HousesOrSigns)
	assert.Zero(t, diags.Len())
}

func TestNeechaBhanga(t *testing.T) {
	snap := charttest.FromSigns(t, zodiac.Aries, map[zodiac.Planet]zodiac.Sign{
		zodiac.Sun:     zodiac.Libra,
		zodiac.Saturn:  zodiac.Libra,
		zodiac.Mars:    zodiac.Cancer,
		zodiac.Jupiter: zodiac.Cancer,
		zodiac.Venus:   zodiac.Virgo,
	})

	records, _ := NewDetector().Detect(snap)

	var nb []Record

	for _, r := range records {
		if r.Name == "Neecha Bhanga Raja Yoga" {
			nb = append(nb, r)
		}
	}

	// Venus is debilitated in Virgo with no exalted companion.
	require.Len(t, nb, 2)
	assert.Equal(t, []zodiac.Planet{zodiac.Sun, zodiac.Saturn}, nb[0].Planets)
	assert.Equal(t, []zodiac.Planet{zodiac.Mars, zodiac.Jupiter}, nb[1].Planets)
	assert.Equal(t, []string{"Cancer"}, nb[1].HousesOrSigns)
}

func kalaSarpaChart(t *testing.T, moved map[zodiac.Planet]zodiac.Sign) *chart.Snapshot {
	t.Helper()

	signs := map[zodiac.Planet]zodiac.Sign{
		zodiac.Sun:     zodiac.Cancer,
		zodiac.Moon:    zodiac.Leo,
		zodiac.Mars:    zodiac.Virgo,
		zodiac.Mercury: zodiac.Libra,
		zodiac.Jupiter: zodiac.Scorpio,
		zodiac.Venus:   zodiac.Cancer,
		zodiac.Saturn:  zodiac.Leo,
		zodiac.Rahu:    zodiac.Gemini,
		zodiac.Ketu:    zodiac.Sagittarius,
	}

	for p, s := range moved {
		signs[p] = s
	}

	return charttest.FromSigns(t, zodiac.Aries, signs)
}

func TestKalaSarpa(t *testing.T) {
	records, _ := NewDetector().Detect(kalaSarpaChart(t, nil))
	require.Contains(t, recordNames(records), "Kala Sarpa Dosha")

	rec := records[len(records)-1]
	assert.Equal(t, "Kala Sarpa Dosha", rec.Name)
	assert.Equal(t, CategoryDosha, rec.Category)
	assert.Equal(t, Negative, rec.Strength)
	assert.NotEmpty(t, rec.Remedies)
	assert.Equal(t, []string{"Gemini", "Sagittarius"}, rec.HousesOrSigns)
}

func TestKalaSarpaSuppressed(t *testing.T) {
	tests := []struct {
		name  string
		moved map[zodiac.Planet]zodiac.Sign
	}{
		{name: "on rahu", moved: map[zodiac.Planet]zodiac.Sign{zodiac.Mars: zodiac.Gemini}},
		{name: "on ketu", moved: map[zodiac.Planet]zodiac.Sign{zodiac.Sun: zodiac.Sagittarius}},
		{name: "outside arc", moved: map[zodiac.Planet]zodiac.Sign{zodiac.Saturn: zodiac.Aquarius}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, _ := NewDetector().Detect(kalaSarpaChart(t, tt.moved))
			assert.NotContains(t, recordNames(records), "Kala Sarpa Dosha")
		})
	}
}

func TestKalaSarpaNeedsNodes(t *testing.T) {
	snap := charttest.FromSigns(t, zodiac.Aries, map[zodiac.Planet]zodiac.Sign{
		zodiac.Sun:     zodiac.Cancer,
		zodiac.Moon:    zodiac.Leo,
		zodiac.Mars:    zodiac.Virgo,
		zodiac.Mercury: zodiac.Libra,
		zodiac.Jupiter: zodiac.Scorpio,
		zodiac.Venus:   zodiac.Cancer,
		zodiac.Saturn:  zodiac.Leo,
	})

	records, diags := NewDetector().Detect(snap)
	assert.NotContains(t, recordNames(records), "Kala Sarpa Dosha")

	skipped := diags.WithCode(diagnostic.CodeRuleSkipped)
	require.Len(t, skipped, 1)
	assert.Equal(t, "Kala Sarpa Dosha", skipped[0].Subject)
	assert.Contains(t, skipped[0].Message, "Rahu, Ketu")
}

func TestKemadrum(t *testing.T) {
	signs := map[zodiac.Planet]zodiac.Sign{
		zodiac.Moon:    zodiac.Aries,
		zodiac.Sun:     zodiac.Cancer,
		zodiac.Mars:    zodiac.Leo,
		zodiac.Mercury: zodiac.Cancer,
		zodiac.Jupiter: zodiac.Virgo,
		zodiac.Venus:   zodiac.Leo,
		zodiac.Saturn:  zodiac.Libra,
	}

	records, _ := NewDetector().Detect(charttest.FromSigns(t, zodiac.Aries, signs))
	require.Contains(t, recordNames(records), "Kemadrum Yoga")

	rec := records[len(records)-1]
	assert.Equal(t, []string{"Pisces", "Aries", "Taurus"}, rec.HousesOrSigns)
	assert.NotEmpty(t, rec.Remedies)

	signs[zodiac.Saturn] = zodiac.Pisces
	records, _ = NewDetector().Detect(charttest.FromSigns(t, zodiac.Aries, signs))
	assert.NotContains(t, recordNames(records), "Kemadrum Yoga")

	delete(signs, zodiac.Saturn)
	records, diags := NewDetector().Detect(charttest.FromSigns(t, zodiac.Aries, signs))
	assert.NotContains(t, recordNames(records), "Kemadrum Yoga")
	assert.NotEmpty(t, diags.WithCode(diagnostic.CodeRuleSkipped))
}

func TestRulePanicIsolated(t *testing.T) {
	boom := Rule{
		Kind: KindConjunction,
		Name: "Broken Yoga",
		Detect: func(*chart.Snapshot) []Record {
			panic("index out of range")
		},
	}

	d := NewDetector(WithRules(boom, gajaKesari()))

	snap := charttest.FromSigns(t, zodiac.Aries, map[zodiac.Planet]zodiac.Sign{
		zodiac.Moon:    zodiac.Cancer,
		zodiac.Jupiter: zodiac.Cancer,
	})

	records, diags := d.Detect(snap)
	assert.Equal(t, []string{"Gaja Kesari Yoga"}, recordNames(records))

	failed := diags.WithCode(diagnostic.CodeRuleFailed)
	require.Len(t, failed, 1)
	assert.Equal(t, "Broken Yoga", failed[0].Subject)
	assert.Equal(t, diagnostic.SeverityWarning, failed[0].Severity)
	assert.Contains(t, failed[0].Message, "index out of range")
}

func TestEnable(t *testing.T) {
	d := NewDetector()
	require.NoError(t, d.Enable([]string{"hamsa yoga", "gaja-kesari yoga"}))

	rules := d.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "Gaja Kesari Yoga", rules[0].Name)
	assert.Equal(t, "Hamsa Yoga", rules[1].Name)

	assert.NoError(t, NewDetector().Enable(nil))
	assert.Len(t, NewDetector().Rules(), len(Catalog()))
}

func TestEnableUnknown(t *testing.T) {
	d := NewDetector()

	err := d.Enable([]string{"Hamsa Yoga", "Hansa Yoga"})
	require.ErrorIs(t, err, ErrUnknownRule)
	assert.Contains(t, err.Error(), `did you mean "Hamsa Yoga"?`)
	assert.Len(t, d.Rules(), len(Catalog()))
}

func TestDetectDeterministic(t *testing.T) {
	snap := kalaSarpaChart(t, nil)

	first, _ := NewDetector().Detect(snap)
	second, _ := NewDetector().Detect(snap)
	assert.Equal(t, first, second)
}

func TestRecordsNotShared(t *testing.T) {
	charts := map[string]*chart.Snapshot{
		"conjunction": charttest.FromSigns(t, zodiac.Aries, map[zodiac.Planet]zodiac.Sign{
			zodiac.Moon: zodiac.Leo,
			zodiac.Mars: zodiac.Leo,
		}),
		"mahapurusha": charttest.Full(t),
	}

	for name, snap := range charts {
		t.Run(name, func(t *testing.T) {
			d := NewDetector()

			first, _ := d.Detect(snap)
			require.NotEmpty(t, first)

			want, _ := d.Detect(snap)

			for i := range first {
				for j := range first[i].Effects {
					first[i].Effects[j] = "changed"
				}

				first[i].Planets[0] = zodiac.Ketu
				first[i].HousesOrSigns[0] = "changed"
			}

			second, _ := d.Detect(snap)
			assert.Equal(t, want, second)
			assert.NotContains(t, second[0].Effects, "changed")
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "nodal axis", KindNodalAxis.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
