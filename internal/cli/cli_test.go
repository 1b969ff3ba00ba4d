package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trackpad/internal/domain"
	"github.com/pkordes/trackpad/internal/model"
	"github.com/pkordes/trackpad/internal/parser"
)

// workspace is a temporary preferences file pointing at temporary lists.
type workspace struct {
	prefs       string
	attractions string
	itineraries string
}

func newWorkspace(t *testing.T) workspace {
	t.Helper()
	t.Setenv("DATABASE_URL", "")
	dir := t.TempDir()
	ws := workspace{
		prefs:       filepath.Join(dir, "preferences.yaml"),
		attractions: filepath.Join(dir, "data", "attractions.json"),
		itineraries: filepath.Join(dir, "data", "itineraries.json"),
	}
	prefs := fmt.Sprintf("attraction_list_path: %s\nitinerary_list_path: %s\n", ws.attractions, ws.itineraries)
	require.NoError(t, os.WriteFile(ws.prefs, []byte(prefs), 0o644))
	return ws
}

// run executes one command line and returns what it printed to stdout.
func (ws workspace) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--prefs", ws.prefs}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (ws workspace) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := ws.run(t, args...)
	require.NoError(t, err, "trackpad %s", strings.Join(args, " "))
	return out
}

func (ws workspace) addAttraction(t *testing.T, name string, extra ...string) {
	t.Helper()
	args := []string{"attraction", "add",
		"--name", name,
		"--phone", "63388977",
		"--email", "visit@merlion.sg",
		"--address", "1 Fullerton Rd",
		"--description", "Waterfront statue",
		"--location", "Singapore",
		"--hours", "0000-2359",
		"--price", "LOW",
		"--rating", "4.2",
	}
	ws.mustRun(t, append(args, extra...)...)
}

func TestAttractionAddAndList(t *testing.T) {
	ws := newWorkspace(t)

	ws.addAttraction(t, "Merlion Park", "--tag", "landmark")
	ws.addAttraction(t, "Singapore Zoo")

	out := ws.mustRun(t, "attraction", "list")
	assert.Contains(t, out, "1. Merlion Park; Phone: 63388977")
	assert.Contains(t, out, "Tags: landmark")
	assert.Contains(t, out, "2. Singapore Zoo")
	assert.Contains(t, out, "2 attractions listed!")
	assert.FileExists(t, ws.attractions)
}

func TestAttractionAdd_Duplicate(t *testing.T) {
	ws := newWorkspace(t)
	ws.addAttraction(t, "Merlion Park")

	_, err := ws.run(t, "attraction", "add", "--name", "MERLION park", "--phone", "63388977",
		"--email", "a@b.sg", "--address", "x", "--description", "y", "--location", "z",
		"--hours", "0900-1000", "--price", "LOW", "--rating", "3")

	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, model.MessageDuplicateAttraction, domain.UserMessage(err))
}

func TestAttractionAdd_InvalidField(t *testing.T) {
	ws := newWorkspace(t)

	_, err := ws.run(t, "attraction", "add", "--name", "Merlion Park", "--phone", "abc")

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, domain.FieldPhone, ve.Field)
	assert.NoFileExists(t, ws.attractions)
}

func TestAttractionIndexErrors(t *testing.T) {
	ws := newWorkspace(t)
	ws.addAttraction(t, "Merlion Park")

	_, err := ws.run(t, "attraction", "delete", "0")
	assert.ErrorIs(t, err, domain.ErrInvalidIndexFormat)
	assert.Equal(t, parser.MessageInvalidIndex, domain.UserMessage(err))

	_, err = ws.run(t, "attraction", "visit", "5")
	assert.ErrorIs(t, err, domain.ErrInvalidIndex)
}

func TestAttractionEditAndVisit(t *testing.T) {
	ws := newWorkspace(t)
	ws.addAttraction(t, "Merlion Park")

	_, err := ws.run(t, "attraction", "edit", "1")
	assert.Equal(t, parser.MessageNotEdited, domain.UserMessage(err))

	ws.mustRun(t, "attraction", "edit", "1", "--rating", "5", "--tag", "night", "--tag", "free")
	ws.mustRun(t, "attraction", "visit", "1")

	out := ws.mustRun(t, "attraction", "list")
	assert.Contains(t, out, "Rating: 5")
	assert.Contains(t, out, "Tags: free, night")
	assert.Contains(t, out, "Phone: 63388977", "unchanged fields are kept")
	assert.Contains(t, out, "[visited]")
}

func TestAttractionFind_PrintsListPositions(t *testing.T) {
	ws := newWorkspace(t)
	ws.addAttraction(t, "Merlion Park")
	ws.addAttraction(t, "Singapore Zoo", "--tag", "animals")
	ws.addAttraction(t, "Night Safari", "--tag", "animals")

	out := ws.mustRun(t, "attraction", "find", "zoo")
	assert.Contains(t, out, "2. Singapore Zoo")
	assert.Contains(t, out, "1 attractions listed!")

	out = ws.mustRun(t, "attraction", "find", "--tag", "animals")
	assert.Contains(t, out, "2. Singapore Zoo")
	assert.Contains(t, out, "3. Night Safari")
	assert.NotContains(t, out, "Merlion")

	_, err := ws.run(t, "attraction", "find")
	assert.Equal(t, MessageEmptyQuery, domain.UserMessage(err))

	_, err = ws.run(t, "attraction", "find", "--visited", "maybe")
	assert.Equal(t, MessageInvalidVisited, domain.UserMessage(err))
}

func TestItineraryLifecycle(t *testing.T) {
	ws := newWorkspace(t)
	ws.addAttraction(t, "Merlion Park")
	ws.addAttraction(t, "Singapore Zoo")

	ws.mustRun(t, "itinerary", "add", "--name", "Singapore", "--start", "2024-03-01", "--days", "2")
	ws.mustRun(t, "itinerary", "add", "--name", "Bali Getaway", "--start", "2024-06-10", "--days", "3")

	_, err := ws.run(t, "itinerary", "add", "--name", "singapore", "--start", "2024-03-01", "--days", "1")
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	out := ws.mustRun(t, "itinerary", "list")
	assert.Contains(t, out, "1. Singapore (2024-03-01, 2 days)")
	assert.Contains(t, out, "2. Bali Getaway (2024-06-10, 3 days)")

	out = ws.mustRun(t, "itinerary", "find", "bali")
	assert.Contains(t, out, "2. Bali Getaway")
	assert.Contains(t, out, "1 itineraries listed!")

	ws.mustRun(t, "itinerary", "delete", "2")
	out = ws.mustRun(t, "itinerary", "list")
	assert.NotContains(t, out, "Bali")
}

func TestPlanAddShowDelete(t *testing.T) {
	ws := newWorkspace(t)
	ws.addAttraction(t, "Merlion Park")
	ws.addAttraction(t, "Singapore Zoo")
	ws.mustRun(t, "itinerary", "add", "--name", "Singapore", "--start", "2024-03-01", "--days", "2")

	ws.mustRun(t, "itinerary", "plan", "add", "1", "1", "2", "1300", "1500")
	ws.mustRun(t, "itinerary", "plan", "add", "1", "1", "1", "0900", "1100")

	_, err := ws.run(t, "itinerary", "plan", "add", "1", "1", "1", "1000", "1200")
	assert.Equal(t, domain.MessageTimeClash, domain.UserMessage(err))

	_, err = ws.run(t, "itinerary", "plan", "add", "1", "3", "1", "1000", "1200")
	assert.Equal(t, domain.MessageInvalidDay, domain.UserMessage(err))

	_, err = ws.run(t, "itinerary", "plan", "add", "1", "1", "1", "1200", "1000")
	assert.ErrorIs(t, err, domain.ErrValidation)

	out := ws.mustRun(t, "itinerary", "show", "1")
	assert.Contains(t, out, "Day 1 (2024-03-01)\n  1. 0900-1100 Merlion Park\n  2. 1300-1500 Singapore Zoo\n")
	assert.Contains(t, out, "Day 2 (2024-03-02)\n  nothing planned\n")

	ws.mustRun(t, "itinerary", "plan", "delete", "1", "1", "1")
	out = ws.mustRun(t, "itinerary", "show", "1")
	assert.NotContains(t, out, "Merlion Park")

	_, err = ws.run(t, "itinerary", "plan", "delete", "1", "1", "4")
	assert.Equal(t, domain.MessageInvalidItineraryAttractionIndex, domain.UserMessage(err))
}

func TestAttractionDelete_RemovesPlannedVisits(t *testing.T) {
	ws := newWorkspace(t)
	ws.addAttraction(t, "Merlion Park")
	ws.mustRun(t, "itinerary", "add", "--name", "Singapore", "--start", "2024-03-01", "--days", "1")
	ws.mustRun(t, "itinerary", "plan", "add", "1", "1", "1", "0900", "1100")

	ws.mustRun(t, "attraction", "delete", "1")

	out := ws.mustRun(t, "itinerary", "show", "1")
	assert.Contains(t, out, "nothing planned")
	out = ws.mustRun(t, "attraction", "list")
	assert.Contains(t, out, "0 attractions listed!")
}

func TestUnreadableDataIsLeftAlone(t *testing.T) {
	ws := newWorkspace(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(ws.attractions), 0o755))
	require.NoError(t, os.WriteFile(ws.attractions, []byte("not json"), 0o644))

	_, err := ws.run(t, "attraction", "add", "--name", "Merlion Park")

	assert.ErrorIs(t, err, domain.ErrPersistence)
	b, readErr := os.ReadFile(ws.attractions)
	require.NoError(t, readErr)
	assert.Equal(t, "not json", string(b))
}

func TestAttractionAdd_PriceHelpNamesAcceptedValues(t *testing.T) {
	ws := newWorkspace(t)
	out := ws.mustRun(t, "attraction", "add", "--help")

	assert.Contains(t, out, "LOW, MEDIUM or HIGH")
	assert.NotContains(t, out, "$$")
}
