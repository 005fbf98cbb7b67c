package assign

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/dtnitsch/chat-word-frequency/internal/common"
	"github.com/dtnitsch/chat-word-frequency/models"
)

func TestAssign(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "chats.json")
	output := filepath.Join(dir, "chats_updated.json")
	doc := `{
		"categories": {"Coding": ["bash", "/ffmpeg|obs/"], "Digital Media": ["mp3", "obs"], "Transcripts": []},
		"chats": [
			{"title": "Recording with OBS", "categories": ["Transcripts"], "chats": ["scene setup"], "url": "https://chat.example/1"},
			{"title": "Weekend", "categories": ["Coding"], "chats": ["nothing technical"]}
		]
	}`
	if err := os.WriteFile(input, []byte(doc), 0644); err != nil {
		t.Fatalf("failed to write corpus: %v", err)
	}

	var out bytes.Buffer
	env := common.BuildEnv(models.DefaultConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)), &out)
	if err := Assign(env, input, output); err != nil {
		t.Fatalf("Assign() error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	updated, err := models.ParseCorpus(data)
	if err != nil {
		t.Fatalf("ParseCorpus() error = %v", err)
	}

	if got, want := updated.Categories.Names(), []string{"Coding", "Digital Media", "Transcripts"}; !reflect.DeepEqual(got, want) {
		t.Errorf("category order = %v, want %v", got, want)
	}
	if got, want := updated.Chats[0].Categories, []string{"Coding", "Digital Media"}; !reflect.DeepEqual(got, want) {
		t.Errorf("chat 0 categories = %v, want %v", got, want)
	}
	if got := updated.Chats[1].Categories; len(got) != 0 {
		t.Errorf("chat 1 categories = %v, want none", got)
	}
	if !strings.Contains(string(data), `"url": "https://chat.example/1"`) {
		t.Errorf("unknown chat field dropped:\n%s", data)
	}
	if !strings.Contains(out.String(), "Categories have been reassigned. Updated file written to: "+output) {
		t.Errorf("missing completion message: %q", out.String())
	}

	original, _ := os.ReadFile(input)
	if string(original) != doc {
		t.Error("input corpus was modified")
	}
}
