package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sample = `{
	"car1_Location": [10.5, -4.0, 0.2],
	"car1_Rotation": [0, 0, 90],
	"car2_Location": [3, 7],
	"car3_Rotation": 45,
	"camera_FOV": 90,
	"bad_Location": [1]
}`

func TestParse(t *testing.T) {
	entities, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(entities) != 2 {
		t.Fatalf("got %d entities, want 2: %+v", len(entities), entities)
	}

	car1 := entities[0]
	if car1.ID != "car1" || car1.X != 10.5 || car1.Y != -4 {
		t.Errorf("car1 = %+v", car1)
	}
	if car1.Heading == nil || *car1.Heading != 90 {
		t.Errorf("car1 heading = %v, want 90", car1.Heading)
	}

	car2 := entities[1]
	if car2.ID != "car2" || car2.X != 3 || car2.Y != 7 {
		t.Errorf("car2 = %+v", car2)
	}
	if car2.Heading != nil {
		t.Errorf("car2 heading = %v, want nil", *car2.Heading)
	}
}

func TestParseScalarRotation(t *testing.T) {
	entities, err := Parse([]byte(`{"truck_Location": [1, 2], "truck_Rotation": -30.5}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(entities) != 1 || entities[0].Heading == nil || *entities[0].Heading != -30.5 {
		t.Errorf("entities = %+v", entities)
	}
}

func TestParseUnderscoredIDs(t *testing.T) {
	doc := `{
		"car_1_Location": [1, 2],
		"car_1_Rotation": 10,
		"car_2_Location": [5, 6],
		"car_2_Rotation": [0, 0, 30]
	}`
	entities, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(entities) != 2 {
		t.Fatalf("got %d entities, want 2: %+v", len(entities), entities)
	}

	tests := []struct {
		id      string
		x, y    float64
		heading float64
	}{
		{"car_1", 1, 2, 10},
		{"car_2", 5, 6, 30},
	}
	for i, tt := range tests {
		e := entities[i]
		if e.ID != tt.id || e.X != tt.x || e.Y != tt.y {
			t.Errorf("entities[%d] = %+v, want %s at (%v, %v)", i, e, tt.id, tt.x, tt.y)
		}
		if e.Heading == nil || *e.Heading != tt.heading {
			t.Errorf("%s heading = %v, want %v", tt.id, e.Heading, tt.heading)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, doc := range []string{`{"car1_Location": [1, 2`, `[1, 2, 3]`, ``} {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", doc)
		}
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("b.json", sample)
	write("a.json", `{"bus_Location": [0, 0]}`)
	write("broken.json", `{`)
	write("notes.txt", `ignored`)

	files, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2", len(files))
	}
	if files[0].Name != "a.json" || files[1].Name != "b.json" {
		t.Errorf("files not sorted by name: %s, %s", files[0].Name, files[1].Name)
	}

	pts := files[1].Points()
	if len(pts) != 2 || pts[0].ID != "car1" || pts[0].Heading == nil {
		t.Errorf("points = %+v", pts)
	}
}

func TestLoadDirEmpty(t *testing.T) {
	_, err := LoadDir(t.TempDir())
	if !errors.Is(err, ErrNoScenes) {
		t.Errorf("LoadDir error = %v, want ErrNoScenes", err)
	}
}

func TestColorIndex(t *testing.T) {
	a := ColorIndex("scene1.json", "car1", 6)
	if a < 0 || a >= 6 {
		t.Fatalf("ColorIndex out of range: %d", a)
	}
	if b := ColorIndex("scene1.json", "car1", 6); a != b {
		t.Errorf("ColorIndex not stable: %d then %d", a, b)
	}
	if got := ColorIndex("x", "y", 0); got != 0 {
		t.Errorf("ColorIndex with empty palette = %d", got)
	}
}
