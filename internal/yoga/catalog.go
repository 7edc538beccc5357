package yoga

import (
	"fmt"
	"slices"

	"chart-interpreter/internal/chart"
	"chart-interpreter/internal/common"
	"chart-interpreter/internal/zodiac"
)

// Catalog returns the rules in detection order. Each call returns a fresh
// slice.
func Catalog() []Rule {
	return []Rule{
		gajaKesari(),
		conjunction("Chandra-Mangal Yoga", CategoryWealth, Medium, zodiac.Moon, zodiac.Mars,
			"Moon and Mars are conjoined in the same sign.",
			[]string{"Drive to earn and accumulate wealth", "Enterprising, resourceful temperament"}),
		conjunction("Budh-Aditya Yoga", CategoryIntelligence, Medium, zodiac.Sun, zodiac.Mercury,
			"Sun and Mercury are conjoined in the same sign.",
			[]string{"Sharp intellect and communication", "Recognition for skill and learning"}),
		conjunction("Guru-Mangal Yoga", CategoryLeadership, Strong, zodiac.Jupiter, zodiac.Mars,
			"Jupiter and Mars are conjoined in the same sign.",
			[]string{"Courage guided by judgment", "Capacity to lead and organize"}),
		conjunction("Shukra-Guru Yoga", CategoryProsperity, Strong, zodiac.Venus, zodiac.Jupiter,
			"Venus and Jupiter are conjoined in the same sign.",
			[]string{"Comfort, refinement and prosperity", "Favour from mentors and patrons"}),
		mahapurusha("Ruchaka Yoga", zodiac.Mars,
			[]string{"Physical strength and courage", "Success in command and competition"}),
		mahapurusha("Bhadra Yoga", zodiac.Mercury,
			[]string{"Eloquence and analytical skill", "Success in trade and scholarship"}),
		mahapurusha("Hamsa Yoga", zodiac.Jupiter,
			[]string{"Wisdom and righteous conduct", "Respect as a counsellor or guide"}),
		mahapurusha("Malavya Yoga", zodiac.Venus,
			[]string{"Charm, artistic talent and luxury", "Happy partnerships"}),
		mahapurusha("Sasha Yoga", zodiac.Saturn,
			[]string{"Discipline and endurance", "Authority over people and resources"}),
		neechaBhanga(),
		kalaSarpa(),
		kemadrum(),
	}
}

// Names returns the rule names in catalog order.
func Names() []string {
	rules := Catalog()

	out := make([]string, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.Name)
	}

	return out
}

func gajaKesari() Rule {
	return Rule{
		Kind:     KindKendraFromMoon,
		Name:     "Gaja Kesari Yoga",
		Requires: []zodiac.Planet{zodiac.Moon, zodiac.Jupiter},
		Detect: func(snap *chart.Snapshot) []Record {
			moon, _ := snap.Sign(zodiac.Moon)
			jupiter, _ := snap.Sign(zodiac.Jupiter)

			fromMoon := zodiac.House(moon.CountTo(jupiter))
			if !fromMoon.IsKendra() {
				return nil
			}

			return []Record{{
				Name:     "Gaja Kesari Yoga",
				Category: CategoryRaja,
				Strength: Strong,
				Description: fmt.Sprintf("Jupiter is in the %s house from the Moon, a kendra.",
					fromMoon.Ordinal()),
				Effects:       []string{"Lasting reputation and influence", "Intelligence and good fortune"},
				Planets:       []zodiac.Planet{zodiac.Moon, zodiac.Jupiter},
				HousesOrSigns: signNames(moon, jupiter),
			}}
		},
	}
}

func conjunction(name string, cat Category, str Strength, a, b zodiac.Planet, desc string, effects []string) Rule {
	return Rule{
		Kind:     KindConjunction,
		Name:     name,
		Requires: []zodiac.Planet{a, b},
		Detect: func(snap *chart.Snapshot) []Record {
			sa, _ := snap.Sign(a)
			sb, _ := snap.Sign(b)

			if sa != sb {
				return nil
			}

			return []Record{{
				Name:          name,
				Category:      cat,
				Strength:      str,
				Description:   desc,
				Effects:       slices.Clone(effects),
				Planets:       []zodiac.Planet{a, b},
				HousesOrSigns: signNames(sa),
			}}
		},
	}
}

func mahapurusha(name string, p zodiac.Planet, effects []string) Rule {
	return Rule{
		Kind:     KindMahapurusha,
		Name:     name,
		Requires: []zodiac.Planet{p},
		Detect: func(snap *chart.Snapshot) []Record {
			pl, _ := snap.Placement(p)

			if !pl.House.IsKendra() {
				return nil
			}

			var dignity string

			switch {
			case zodiac.IsExalted(p, pl.Sign):
				dignity = "exalted"
			case zodiac.IsOwnSign(p, pl.Sign):
				dignity = "in its own sign"
			default:
				return nil
			}

			return []Record{{
				Name:     name,
				Category: CategoryMahapurusha,
				Strength: VeryStrong,
				Description: fmt.Sprintf("%s is %s in %s, the %s house (a kendra).",
					p, dignity, pl.Sign, pl.House.Ordinal()),
				Effects:       slices.Clone(effects),
				Planets:       []zodiac.Planet{p},
				HousesOrSigns: []string{houseName(pl.House), pl.Sign.String()},
			}}
		},
	}
}

func neechaBhanga() Rule {
	return Rule{
		Kind: KindCancellation,
		Name: "Neecha Bhanga Raja Yoga",
		Detect: func(snap *chart.Snapshot) []Record {
			var out []Record

			for _, p := range zodiac.ClassicalPlanets() {
				pl, ok := snap.Placement(p)
				if !ok || !zodiac.IsDebilitated(p, pl.Sign) {
					continue
				}

				planets := []zodiac.Planet{p}

				for _, other := range snap.InSign(pl.Sign) {
					if other.Planet != p && other.Planet.IsClassical() && zodiac.IsExalted(other.Planet, pl.Sign) {
						planets = append(planets, other.Planet)
					}
				}

				if len(planets) == 1 {
					continue
				}

				out = append(out, Record{
					Name:     "Neecha Bhanga Raja Yoga",
					Category: CategoryRaja,
					Strength: Strong,
					Description: fmt.Sprintf("%s is debilitated in %s but %s is exalted there, cancelling the debility.",
						p, pl.Sign, planets[1]),
					Effects:       []string{"Rise after early setbacks", "Strength drawn from adversity"},
					Planets:       planets,
					HousesOrSigns: signNames(pl.Sign),
				})
			}

			return out
		},
	}
}

func kalaSarpa() Rule {
	return Rule{
		Kind:     KindNodalAxis,
		Name:     "Kala Sarpa Dosha",
		Requires: zodiac.Planets(),
		Detect: func(snap *chart.Snapshot) []Record {
			rahu, _ := snap.Sign(zodiac.Rahu)
			ketu, _ := snap.Sign(zodiac.Ketu)

			span := common.Mod(int(ketu)-int(rahu), zodiac.SignCount)

			for _, p := range zodiac.ClassicalPlanets() {
				s, _ := snap.Sign(p)

				// Strictly between Rahu and Ketu, counting forward from Rahu.
				offset := common.Mod(int(s)-int(rahu), zodiac.SignCount)
				if offset == 0 || offset >= span {
					return nil
				}
			}

			return []Record{{
				Name:     "Kala Sarpa Dosha",
				Category: CategoryDosha,
				Strength: Negative,
				Description: fmt.Sprintf("All seven planets lie between Rahu in %s and Ketu in %s.",
					rahu, ketu),
				Effects:       []string{"Delays and obstacles in key life areas", "Sudden reversals of fortune"},
				Planets:       []zodiac.Planet{zodiac.Rahu, zodiac.Ketu},
				HousesOrSigns: signNames(rahu, ketu),
				Remedies: []string{
					"Recite the Maha Mrityunjaya mantra",
					"Perform Kala Sarpa shanti puja",
					"Worship Lord Shiva on Mondays",
				},
			}}
		},
	}
}

func kemadrum() Rule {
	return Rule{
		Kind:     KindLunarIsolation,
		Name:     "Kemadrum Yoga",
		Requires: zodiac.ClassicalPlanets(),
		Detect: func(snap *chart.Snapshot) []Record {
			moon, _ := snap.Sign(zodiac.Moon)
			around := []zodiac.Sign{moon.Add(-1), moon, moon.Add(1)}

			for _, s := range around {
				for _, pl := range snap.InSign(s) {
					if pl.Planet.IsClassical() && pl.Planet != zodiac.Moon {
						return nil
					}
				}
			}

			return []Record{{
				Name:          "Kemadrum Yoga",
				Category:      CategoryDosha,
				Strength:      Negative,
				Description:   "No planet accompanies the Moon or occupies the sign on either side of it.",
				Effects:       []string{"Emotional isolation", "Financial instability"},
				Planets:       []zodiac.Planet{zodiac.Moon},
				HousesOrSigns: signNames(around...),
				Remedies: []string{
					"Worship the Moon on Mondays",
					"Wear a pearl after consulting an astrologer",
					"Recite the Chandra mantra",
				},
			}}
		},
	}
}

// signNames renders signs by name, dropping repeats.
func signNames(signs ...zodiac.Sign) []string {
	out := make([]string, 0, len(signs))
	seen := make(map[zodiac.Sign]bool, len(signs))

	for _, s := range signs {
		if seen[s] {
			continue
		}

		seen[s] = true
		out = append(out, s.String())
	}

	return out
}

func houseName(h zodiac.House) string {
	return fmt.Sprintf("house %d", h)
}
