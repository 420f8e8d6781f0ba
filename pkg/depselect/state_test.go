package depselect_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-depselect/pkg/depselect"
)

func TestRender_States(t *testing.T) {
	msgs := depselect.RussianMessages()

	cases := []struct {
		name  string
		state depselect.State
		want  []depselect.Option
	}{
		{
			name:  "awaiting source",
			state: depselect.State{Kind: depselect.AwaitingSource},
			want:  []depselect.Option{{Label: "-- Сначала выберите склад --", Placeholder: true}},
		},
		{
			name:  "loading",
			state: depselect.State{Kind: depselect.Loading},
			want:  []depselect.Option{{Label: "Загрузка...", Placeholder: true}},
		},
		{
			name:  "empty",
			state: depselect.StateFor(nil, nil),
			want:  []depselect.Option{{Label: "Нет доступных боксов на этом складе", Placeholder: true}},
		},
		{
			name:  "failed",
			state: depselect.StateFor(nil, errors.New("boom")),
			want:  []depselect.Option{{Label: "Ошибка загрузки списка", Placeholder: true}},
		},
		{
			name: "populated",
			state: depselect.StateFor([]depselect.Box{
				{ID: "3", Label: "Бокс №3", Disabled: true},
				{ID: "1", Label: "Бокс №1"},
			}, nil),
			want: []depselect.Option{
				{Value: "3", Label: "Бокс №3 (Недоступен)", Disabled: true},
				{Value: "1", Label: "Бокс №1"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := depselect.Render(tc.state, msgs)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("render mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRender_EmptyMessagesFallBackToDefaults(t *testing.T) {
	got := depselect.Render(depselect.State{Kind: depselect.Loading}, depselect.Messages{})
	if len(got) != 1 || got[0].Label != depselect.DefaultMessages().Loading {
		t.Fatalf("expected default loading label, got %#v", got)
	}
}

func TestRender_PartialMessagesKeepUnavailableSuffix(t *testing.T) {
	state := depselect.StateFor([]depselect.Box{{ID: "2", Label: "Box B", Disabled: true}}, nil)

	got := depselect.Render(state, depselect.Messages{LoadFailed: "Something went wrong"})
	want := []depselect.Option{{Value: "2", Label: "Box B (unavailable)", Disabled: true}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}

	got = depselect.Render(state, depselect.Messages{HideUnavailable: true})
	want = []depselect.Option{{Value: "2", Label: "Box B", Disabled: true}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("options mismatch with suffix hidden (-want +got):\n%s", diff)
	}
}

func TestStateFor_Kinds(t *testing.T) {
	if got := depselect.StateFor(nil, errors.New("x")).Kind; got != depselect.Failed {
		t.Fatalf("expected failed, got %s", got)
	}
	if got := depselect.StateFor([]depselect.Box{}, nil).Kind; got != depselect.Empty {
		t.Fatalf("expected empty, got %s", got)
	}
	if got := depselect.StateFor([]depselect.Box{{ID: "1"}}, nil).Kind; got != depselect.Populated {
		t.Fatalf("expected populated, got %s", got)
	}
}

func TestMessagesForLocale(t *testing.T) {
	if got := depselect.MessagesForLocale("ru-RU"); got != depselect.RussianMessages() {
		t.Fatalf("expected russian messages, got %#v", got)
	}
	if got := depselect.MessagesForLocale("en"); got != depselect.DefaultMessages() {
		t.Fatalf("expected default messages, got %#v", got)
	}
}

func TestMatchLocale(t *testing.T) {
	cases := map[string]string{
		"":                        "en",
		"ru":                      "ru",
		"ru-RU":                   "ru",
		"en-GB":                   "en",
		"fr":                      "en",
		"ru-RU,ru;q=0.9,en;q=0.8": "ru",
	}
	for input, want := range cases {
		if got := depselect.MatchLocale(input); got != want {
			t.Fatalf("MatchLocale(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestBox_UnmarshalAcceptsNumericAndStringIDs(t *testing.T) {
	payload := `[{"id": 17, "label": "Box 17", "disabled": false}, {"id": "a-2", "label": "Box A2", "disabled": true}, {"label": "no id"}]`

	var boxes []depselect.Box
	if err := json.Unmarshal([]byte(payload), &boxes); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := []depselect.Box{
		{ID: "17", Label: "Box 17"},
		{ID: "a-2", Label: "Box A2", Disabled: true},
		{ID: "", Label: "no id"},
	}
	if diff := cmp.Diff(want, boxes); diff != "" {
		t.Fatalf("boxes mismatch (-want +got):\n%s", diff)
	}
}

func TestBox_UnmarshalRejectsObjectID(t *testing.T) {
	var box depselect.Box
	if err := json.Unmarshal([]byte(`{"id": {"n": 1}, "label": "x"}`), &box); err == nil {
		t.Fatalf("expected error for object id")
	}
}

func TestBox_UnmarshalRejectsNullEntry(t *testing.T) {
	var boxes []depselect.Box
	if err := json.Unmarshal([]byte(`[{"id": 1, "label": "Box 1"}, null]`), &boxes); err == nil {
		t.Fatalf("expected error for null entry, got %#v", boxes)
	}
}
