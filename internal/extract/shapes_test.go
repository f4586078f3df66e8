package extract

import (
	"errors"
	"testing"
)

func TestTeamTitle(t *testing.T) {
	tests := []struct {
		text         string
		wantTitle    string
		wantLocation string
		wantErr      bool
	}{
		{"Alpha\n      Moscow", "Alpha", "Moscow", false},
		{"Ак Барс\n    Казань", "Ак Барс", "Казань", false},
		{"Куньлунь Ред Стар\n  Пекин", "Куньлунь Ред Стар", "Пекин", false},
		{"СКА\n  Санкт-Петербург", "СКА", "Санкт-Петербург", false},
		{"  Динамо Мн  \n  Минск  ", "Динамо Мн", "Минск", false},
		{"XY", "", "", true},
		{"", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.wantTitle, func(t *testing.T) {
			title, location, err := teamTitle(tt.text)
			if tt.wantErr {
				if !errors.Is(err, ErrShapeMismatch) {
					t.Fatalf("teamTitle(%q) error = %v, want ErrShapeMismatch", tt.text, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("teamTitle(%q) unexpected error: %v", tt.text, err)
			}
			if title != tt.wantTitle || location != tt.wantLocation {
				t.Errorf("teamTitle(%q) = (%q, %q), want (%q, %q)", tt.text, title, location, tt.wantTitle, tt.wantLocation)
			}
		})
	}
}

func TestTeamPair(t *testing.T) {
	tests := []struct {
		text      string
		wantHome  string
		wantGuest string
		wantErr   bool
	}{
		{"Alpha — Beta", "Alpha", "Beta", false},
		{"Динамо Мн — ХК Сочи", "Динамо Мн", "ХК Сочи", false},
		{"Куньлунь Ред Стар - Металлург Мг", "Куньлунь Ред Стар", "Металлург Мг", false},
		{"Alpha—Beta", "Alpha", "Beta", false},
		{"—", "", "", true},
		{"Alpha —", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			home, guest, err := teamPair(tt.text)
			if tt.wantErr {
				if !errors.Is(err, ErrShapeMismatch) {
					t.Fatalf("teamPair(%q) error = %v, want ErrShapeMismatch", tt.text, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("teamPair(%q) unexpected error: %v", tt.text, err)
			}
			if home != tt.wantHome || guest != tt.wantGuest {
				t.Errorf("teamPair(%q) = (%q, %q), want (%q, %q)", tt.text, home, guest, tt.wantHome, tt.wantGuest)
			}
		})
	}
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		text string
		want []int
	}{
		{"3:1", []int{3, 1}},
		{"2 : 3 ОТ", []int{2, 3}},
		{"", []int{}},
		{"—", []int{}},
		{"10:0", []int{10, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := parseScore(tt.text)
			if got == nil {
				t.Fatal("parseScore() returned nil")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseScore(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseScore(%q) = %v, want %v", tt.text, got, tt.want)
				}
			}
		})
	}
}

func TestCoachAndArena(t *testing.T) {
	if got := coachName("Ivan Ivanov (since 2019)"); got != "Ivan Ivanov" {
		t.Errorf("coachName() = %q, want 'Ivan Ivanov'", got)
	}
	if got := coachName("(vacant)"); got != "" {
		t.Errorf("coachName() = %q, want empty", got)
	}
	if got := arenaName("Арена-Омск Центр, 12000"); got != "Арена-Омск Центр" {
		t.Errorf("arenaName() = %q", got)
	}
	if got := arenaName("ЛДС"); got != "ЛДС" {
		t.Errorf("arenaName() = %q, want ЛДС", got)
	}
	if got := arenaName("?"); got != "" {
		t.Errorf("arenaName() = %q, want empty", got)
	}
}

func TestColonValues(t *testing.T) {
	if got := presidentName("Президент: Иван Иванов"); got != "Иван Иванов" {
		t.Errorf("presidentName() = %q", got)
	}
	if got := presidentName("no colon"); got != "" {
		t.Errorf("presidentName() = %q, want empty", got)
	}

	sponsor := sponsorName("Спонсор: Газпром")
	if sponsor == nil || *sponsor != "Газпром" {
		t.Errorf("sponsorName() = %v, want Газпром", sponsor)
	}
	if sponsorName("") != nil {
		t.Error("sponsorName(\"\") should be nil")
	}
}

func TestSiteURL(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"www.hawk.ru", "http://www.hawk.ru"},
		{" www.hawk.ru ", "http://www.hawk.ru"},
		{"//www.hawk.ru", "http://www.hawk.ru"},
		{"https://www.hawk.ru", "https://www.hawk.ru"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := siteURL(tt.text)
			if got == nil || *got != tt.want {
				t.Errorf("siteURL(%q) = %v, want %q", tt.text, got, tt.want)
			}
		})
	}

	if siteURL("  ") != nil {
		t.Error("siteURL of blank text should be nil")
	}
}

func TestNormalizeCell(t *testing.T) {
	// "й" written as "и" plus a combining breve composes to one rune.
	if got := normalizeCell("  Андре\u0438\u0306\n\t Иванов "); got != "Андрей Иванов" {
		t.Errorf("normalizeCell() = %q", got)
	}
	if got := normalizeCell("a\u00a0b"); got != "a b" {
		t.Errorf("normalizeCell() = %q, want 'a b'", got)
	}
}
