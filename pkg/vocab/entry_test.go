package vocab

import "testing"

func TestEntryIsCategoryLabel(t *testing.T) {
	tests := []struct {
		english string
		want    bool
	}{
		{"#Greetings", true},
		{"#", true},
		{"hello", false},
		{"C#", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.english, func(t *testing.T) {
			e := Entry{English: tt.english}
			if got := e.IsCategoryLabel(); got != tt.want {
				t.Errorf("IsCategoryLabel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCategoryLabel(t *testing.T) {
	e := CategoryLabel("Food")
	if e.English != "#Food" {
		t.Errorf("English = %q, want %q", e.English, "#Food")
	}
	if e.LabelName() != "Food" {
		t.Errorf("LabelName() = %q, want %q", e.LabelName(), "Food")
	}
	if e.Romaji != "" || e.Kana != "" || e.Kanji != "" || e.Lesson != 0 {
		t.Errorf("label should have empty fields, got %+v", e)
	}
	if got := NewEntry("dog", "inu", "いぬ", "犬", 1).LabelName(); got != "" {
		t.Errorf("LabelName() of ordinary entry = %q, want empty", got)
	}
}

func TestEntryEqual(t *testing.T) {
	a := NewEntry("dog", "inu", "いぬ", "犬", 1)
	b := NewEntry("dog", "", "", "", 7)
	c := NewEntry("Dog", "inu", "いぬ", "犬", 1)

	if !a.Equal(b) {
		t.Error("entries with the same english should be equal")
	}
	if a.Equal(c) {
		t.Error("english comparison should be case-sensitive")
	}
}

func TestEntryValidate(t *testing.T) {
	tests := []struct {
		name    string
		entry   Entry
		wantErr bool
	}{
		{"valid", NewEntry("cat", "neko", "ねこ", "猫", 2), false},
		{"label", CategoryLabel("Animals"), false},
		{"empty english", NewEntry("", "neko", "", "", 0), true},
		{"negative lesson", NewEntry("cat", "", "", "", -1), true},
		{"invalid utf-8 english", NewEntry("bad\xffutf", "", "", "", 0), true},
		{"invalid utf-8 kana", NewEntry("cat", "", "ね\xe3", "", 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEntryString(t *testing.T) {
	e := NewEntry("water", "mizu", "みず", "水", 3)
	want := "water: mizu, みず, 水, 3"
	if got := e.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
