package report

import (
	"fmt"
	"strings"
	"text/template"

	"chart-interpreter/internal/friendship"
	"chart-interpreter/internal/zodiac"
)

// textFuncs returns the template helpers; st decorates titles, tiers and
// severities.
func textFuncs(st styler) template.FuncMap {
	return template.FuncMap{
		"planets":  zodiac.ClassicalPlanets,
		"title":    st.title,
		"tier":     st.tier,
		"severity": st.severity,
		"tally":    tally,

		"relation": func(m friendship.Matrix, a, b zodiac.Planet) string {
			return string(m.At(a, b))
		},
		"join": func(v any) string {
			switch vs := v.(type) {
			case []string:
				return strings.Join(vs, ", ")
			case []zodiac.Planet:
				names := make([]string, len(vs))
				for i, p := range vs {
					names[i] = p.String()
				}

				return strings.Join(names, ", ")
			default:
				return fmt.Sprint(v)
			}
		},
		"pad": func(n int, v any) string {
			return fmt.Sprintf("%-*s", n, fmt.Sprint(v))
		},
		"signed": func(v float64) string {
			return fmt.Sprintf("%+.1f", v)
		},
		"deg": func(v float64) string {
			return fmt.Sprintf("%5.2f°", v)
		},
		"retro": func(r bool) string {
			if r {
				return " (R)"
			}

			return ""
		},
	}
}

// tallyOrder fixes the order of the five-fold summary.
var tallyOrder = []friendship.Relation{
	friendship.BestFriend,
	friendship.Friend,
	friendship.Neutral,
	friendship.Enemy,
	friendship.GreatEnemy,
	friendship.Unknown,
}

// tally summarizes a matrix as "BestFriend 4, Friend 10, ...", skipping
// relations that do not occur.
func tally(m friendship.Matrix) string {
	counts := m.Count()

	parts := make([]string, 0, len(tallyOrder))
	for _, r := range tallyOrder {
		if n := counts[r]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", r, n))
		}
	}

	return strings.Join(parts, ", ")
}

var (
	textTemplates   = template.Must(template.New("report").Funcs(textFuncs(plainStyler{})).Parse(textSource))
	styledTemplates = template.Must(template.New("report").Funcs(textFuncs(colorStyler{})).Parse(textSource))
)

const textSource = `
{{- define "header" -}}
{{if .Name}}Chart: {{.Name}}
{{end -}}
Ascendant: {{.Ascendant.Sign}} {{deg .Ascendant.DegreeInSign}} ({{.Ascendant.NakshatraName}} pada {{.Ascendant.Pada}})
{{end}}

{{- define "positions" -}}
{{title "Positions"}}
{{range .Positions}}  {{pad 8 .Planet}} {{pad 12 .Sign}} {{deg .DegreeInSign}}  house {{printf "%2d" .House}}  {{.NakshatraName}} pada {{.Pada}}{{retro .Retrograde}}
{{end}}{{end}}

{{- define "houses" -}}
{{title "Houses"}}
{{range .Houses}}  {{printf "%2d" .House}} {{pad 12 .Sign}} lord {{pad 8 .Lord}} score {{signed .Score}}  {{tier .Tier}}{{with $.Aspects.Aspecting .House}}  aspected by {{join .}}{{end}}
{{range .Reasons}}       - {{.}}
{{end}}{{end}}{{end}}

{{- define "yogas" -}}
{{title "Yogas"}}
{{if not .Yogas}}  none detected
{{end}}{{range .Yogas}}  {{.Name}} [{{.Category}}, {{.Strength}}]
      {{.Description}}
      planets: {{join .Planets}}; {{join .HousesOrSigns}}
{{range .Effects}}      + {{.}}
{{end}}{{range .Remedies}}      remedy: {{.}}
{{end}}{{end}}{{end}}

{{- define "matrix" -}}
{{pad 9 ""}}{{range planets}}{{pad 11 .}}{{end}}
{{$m := .}}{{range $a := planets}}  {{pad 7 $a}}{{range $b := planets}}{{pad 11 (relation $m $a $b)}}{{end}}
{{end}}{{end}}

{{- define "friendship" -}}
{{title "Permanent friendship"}}
{{template "matrix" .Friendship.Permanent}}
{{title "Temporal friendship"}}
{{template "matrix" .Friendship.Temporal}}
{{title "Five-fold friendship"}}
{{template "matrix" .Friendship.FiveFold}}  tally: {{tally .Friendship.FiveFold}}
{{end}}

{{- define "diagnostics" -}}
{{title "Diagnostics"}}
{{if eq .Diagnostics.Len 0}}  none
{{end}}{{range .Diagnostics.Errors}}  {{severity "error"}} {{.}}
{{end}}{{range .Diagnostics.Warnings}}  {{severity "warning"}} {{.}}
{{end}}{{range .Diagnostics.Infos}}  {{severity "info"}} {{.}}
{{end}}{{end}}

{{- define "interpretation" -}}
{{template "header" .}}
{{template "positions" .}}
{{template "houses" .}}
{{template "yogas" .}}
{{template "friendship" .}}
{{template "diagnostics" .}}{{end}}
`
