package finder

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/desertthunder/encore/internal/catalog"
	"github.com/desertthunder/encore/internal/models"
)

type fixedJitter float64

func (f fixedJitter) Float64() float64 { return float64(f) }

func testShow(genre models.Genre, songs ...models.Song) models.Show {
	return models.Show{ID: "test-show", Title: "Test Show", Genre: genre, Songs: songs}
}

func TestFindMatchesNeverReturnsEnsembles(t *testing.T) {
	shows := catalog.Default().ListShows()

	queries := []Query{
		{},
		{VocalRange: "Soprano", Style: StyleBallad, AuditionType: AuditionLegit},
		{VocalRange: "Tenor", Style: StyleAny, AuditionType: AuditionAny},
		{VocalRange: "Bass", Style: StyleComedic, AuditionType: AuditionGeneral},
	}

	for _, q := range queries {
		for _, m := range FindMatches(shows, q, NewJitter(7)) {
			if m.Song.Type == models.SongEnsemble {
				t.Errorf("query %+v returned ensemble song %s", q, m.Song.ID)
			}
		}
	}
}

func TestRangeReasonIffRangeMatches(t *testing.T) {
	shows := catalog.Default().ListShows()

	for _, vocalRange := range append([]string{""}, models.VocalRanges...) {
		q := Query{VocalRange: vocalRange, Style: StyleAny, AuditionType: AuditionAny}
		for _, m := range FindMatches(shows, q, Zero) {
			has := slices.Contains(m.Reasons, ReasonRange)
			want := vocalRange != "" && RangeMatches(m.Song.VocalRange, vocalRange)
			if has != want {
				t.Errorf("range %q song %s (%s): reason present=%v, want %v",
					vocalRange, m.Song.ID, m.Song.VocalRange, has, want)
			}
		}
	}
}

func TestFindMatchesDeterministicWithZeroJitter(t *testing.T) {
	shows := catalog.Default().ListShows()
	q := Query{VocalRange: "Mezzo-Soprano", Style: StyleDramatic, AuditionType: AuditionBelt}

	first := FindMatches(shows, q, Zero)
	second := FindMatches(shows, q, Zero)

	if len(first) == 0 {
		t.Fatal("expected matches")
	}
	if len(first) != len(second) {
		t.Fatalf("result lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Song.ID != second[i].Song.ID || first[i].Score != second[i].Score {
			t.Errorf("position %d differs: %s/%v vs %s/%v",
				i, first[i].Song.ID, first[i].Score, second[i].Song.ID, second[i].Score)
		}
	}
}

func TestFindMatchesSameSeedSameOrder(t *testing.T) {
	shows := catalog.Default().ListShows()
	q := Query{Style: StyleUptempo, AuditionType: AuditionContemporary}

	a := FindMatches(shows, q, NewJitter(42))
	b := FindMatches(shows, q, NewJitter(42))

	if len(a) != len(b) {
		t.Fatalf("result lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Song.ID != b[i].Song.ID {
			t.Errorf("position %d differs: %s vs %s", i, a[i].Song.ID, b[i].Song.ID)
		}
	}
}

func TestMixedSongScenario(t *testing.T) {
	shows := []models.Show{testShow(models.GenreClassic, models.Song{
		ID: "mix-1", Title: "Anyone Can Sing", VocalRange: models.MixedRange, Type: models.SongSolo,
	})}

	got := FindMatches(shows, Query{VocalRange: "Soprano", Style: StyleAny, AuditionType: AuditionAny}, Zero)
	if len(got) != 1 {
		t.Fatalf("expected one match, got %d", len(got))
	}
	if got[0].Score < 30+5+5+10 {
		t.Errorf("expected score >= 50, got %v", got[0].Score)
	}
	if !slices.Contains(got[0].Reasons, ReasonRange) {
		t.Errorf("expected range reason, got %v", got[0].Reasons)
	}
}

func TestScoring(t *testing.T) {
	tc := []struct {
		name        string
		genre       models.Genre
		song        models.Song
		query       Query
		wantScore   float64
		wantReasons []string
	}{
		{
			name:        "no preferences solo",
			genre:       models.GenreComedy,
			song:        models.Song{ID: "x-1", VocalRange: "Tenor", Type: models.SongSolo},
			query:       Query{Style: StyleAny, AuditionType: AuditionAny},
			wantScore:   10 + 5 + 5 + 10,
			wantReasons: []string{ReasonSolo},
		},
		{
			name:        "partial range on slash prefix",
			genre:       models.GenreComedy,
			song:        models.Song{ID: "x-1", VocalRange: "Baritone", Type: models.SongDuet},
			query:       Query{VocalRange: "Baritone/Tenor", Style: StyleAny, AuditionType: AuditionAny},
			wantScore:   15 + 5 + 5 + 3,
			wantReasons: []string{ReasonPartialRange},
		},
		{
			name:        "style hit from curated hints",
			genre:       models.GenreComedy,
			song:        models.Song{ID: "wic-4", VocalRange: "Mezzo-Soprano/Belt", Type: models.SongSolo},
			query:       Query{VocalRange: "mezzo-soprano", Style: StyleDramatic, AuditionType: AuditionBelt},
			wantScore:   30 + 25 + 25 + 10,
			wantReasons: []string{ReasonRange, "Dramatic style", ReasonBelt, ReasonSolo},
		},
		{
			name:        "style miss adds nothing",
			genre:       models.GenreComedy,
			song:        models.Song{ID: "wic-4", VocalRange: "Mezzo-Soprano/Belt", Type: models.SongSolo},
			query:       Query{Style: StyleBallad, AuditionType: AuditionGeneral},
			wantScore:   10 + 0 + 10 + 10,
			wantReasons: []string{ReasonSolo},
		},
		{
			name:        "contemporary via rock genre",
			genre:       models.GenreRock,
			song:        models.Song{ID: "x-1", VocalRange: "Tenor", Type: models.SongMonologue},
			query:       Query{VocalRange: "Tenor", Style: StyleAny, AuditionType: AuditionContemporary},
			wantScore:   30 + 5 + 20,
			wantReasons: []string{ReasonRange, ReasonContemporary},
		},
		{
			name:        "classic via drama genre",
			genre:       models.GenreDrama,
			song:        models.Song{ID: "x-1", VocalRange: "Tenor", Type: models.SongSolo},
			query:       Query{VocalRange: "Tenor", Style: StyleAny, AuditionType: AuditionClassic},
			wantScore:   30 + 5 + 20 + 10,
			wantReasons: []string{ReasonRange, ReasonClassic, ReasonSolo},
		},
		{
			name:        "legit showcase",
			genre:       models.GenreClassic,
			song:        models.Song{ID: "pha-1", VocalRange: "Soprano", Type: models.SongSolo},
			query:       Query{VocalRange: "Soprano", Style: StyleLegit, AuditionType: AuditionLegit},
			wantScore:   30 + 25 + 25 + 10,
			wantReasons: []string{ReasonRange, "Legit style", ReasonLegit, ReasonSolo},
		},
		{
			name:        "empty enums behave like any",
			genre:       models.GenreClassic,
			song:        models.Song{ID: "x-1", VocalRange: "Alto", Type: models.SongSolo},
			query:       Query{},
			wantScore:   10 + 5 + 5 + 10,
			wantReasons: []string{ReasonSolo},
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := FindMatches([]models.Show{testShow(tt.genre, tt.song)}, tt.query, Zero)
			if len(got) != 1 {
				t.Fatalf("expected one match, got %d", len(got))
			}
			if got[0].Score != tt.wantScore {
				t.Errorf("score = %v, want %v", got[0].Score, tt.wantScore)
			}
			if !slices.Equal(got[0].Reasons, tt.wantReasons) {
				t.Errorf("reasons = %v, want %v", got[0].Reasons, tt.wantReasons)
			}
		})
	}
}

func TestThresholdAfterJitter(t *testing.T) {
	// 0 range + 5 style + 10 general + 0 monologue = 15 before jitter.
	show := testShow(models.GenreComedy, models.Song{ID: "x-1", VocalRange: "Bass", Type: models.SongMonologue})
	q := Query{VocalRange: "Soprano", Style: StyleAny, AuditionType: AuditionGeneral}

	if got := FindMatches([]models.Show{show}, q, Zero); len(got) != 0 {
		t.Errorf("expected score of exactly 15 to be dropped, got %v", got[0].Score)
	}

	got := FindMatches([]models.Show{show}, q, fixedJitter(0.5))
	if len(got) != 1 || got[0].Score != 19 {
		t.Errorf("expected jitter to lift the candidate to 19, got %+v", got)
	}
}

func TestExclude(t *testing.T) {
	shows := catalog.Default().ListShows()
	q := Query{Exclude: map[string]struct{}{"wic-4": {}, "ham-2": {}}}

	for _, m := range FindMatches(shows, q, Zero) {
		if m.Song.ID == "wic-4" || m.Song.ID == "ham-2" {
			t.Errorf("excluded song %s returned", m.Song.ID)
		}
	}
}

func TestSortedDescendingAndStable(t *testing.T) {
	shows := catalog.Default().ListShows()
	got := FindMatches(shows, Query{VocalRange: "Tenor"}, rand.New(rand.NewSource(3)))

	for i := 1; i < len(got); i++ {
		if got[i-1].Score < got[i].Score {
			t.Fatalf("results not sorted at %d: %v < %v", i, got[i-1].Score, got[i].Score)
		}
	}

	// With zero jitter, ties keep catalog order.
	tied := FindMatches([]models.Show{testShow(models.GenreComedy,
		models.Song{ID: "a", VocalRange: "Alto", Type: models.SongSolo},
		models.Song{ID: "b", VocalRange: "Alto", Type: models.SongSolo},
	)}, Query{}, Zero)
	if len(tied) != 2 || tied[0].Song.ID != "a" || tied[1].Song.ID != "b" {
		t.Errorf("expected stable order a, b; got %+v", tied)
	}
}

func TestEmptyCatalog(t *testing.T) {
	if got := FindMatches(nil, Query{VocalRange: "Tenor"}, NewJitter(1)); len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}

func TestJitterBounds(t *testing.T) {
	j := NewJitter(99)
	for range 1000 {
		v := j.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("jitter draw out of range: %v", v)
		}
	}
	if Zero.Float64() != 0 {
		t.Error("Zero jitter should draw 0")
	}
}

func TestTopAndTopReasons(t *testing.T) {
	matches := make([]Match, 20)
	if got := Top(matches, 0); len(got) != DefaultLimit {
		t.Errorf("expected default limit %d, got %d", DefaultLimit, len(got))
	}
	if got := Top(matches, 5); len(got) != 5 {
		t.Errorf("expected 5, got %d", len(got))
	}
	if got := Top(matches[:3], 5); len(got) != 3 {
		t.Errorf("expected 3, got %d", len(got))
	}

	m := Match{Reasons: []string{"a", "b", "c", "d"}}
	if got := m.TopReasons(3); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("unexpected reasons %v", got)
	}
}

func TestParse(t *testing.T) {
	tc := []struct {
		input   string
		style   Style
		wantErr bool
	}{
		{input: "", style: StyleAny},
		{input: "Ballad", style: StyleBallad},
		{input: " legit ", style: StyleLegit},
		{input: "polka", wantErr: true},
	}

	for _, tt := range tc {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStyle(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownOption) {
					t.Errorf("expected ErrUnknownOption, got %v", err)
				}
				return
			}
			if err != nil || got != tt.style {
				t.Errorf("ParseStyle(%q) = %v, %v", tt.input, got, err)
			}
		})
	}

	if got, err := ParseAuditionType("BELT"); err != nil || got != AuditionBelt {
		t.Errorf("ParseAuditionType(BELT) = %v, %v", got, err)
	}
	if _, err := ParseAuditionType("cabaret"); !errors.Is(err, ErrUnknownOption) {
		t.Errorf("expected ErrUnknownOption, got %v", err)
	}
}

func TestCuratedIDsExistInCatalog(t *testing.T) {
	c := catalog.Default()
	for id := range styleHints {
		if _, ok := c.SongByID(id); !ok {
			t.Errorf("style hint for unknown song %s", id)
		}
	}
	for id := range beltSongs {
		if _, ok := c.SongByID(id); !ok {
			t.Errorf("belt song %s missing from catalog", id)
		}
	}
	for id := range legitSongs {
		if _, ok := c.SongByID(id); !ok {
			t.Errorf("legit song %s missing from catalog", id)
		}
	}
}
