// Package scene reads scene description files: flat JSON objects whose keys
// are an entity name joined with a property suffix, e.g. "car1_Location".
package scene

import (
	"hash/fnv"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"scene-viewer/projection"
)

const (
	LocationSuffix = "_Location"
	RotationSuffix = "_Rotation"
)

// ErrNoScenes is returned when a directory holds no readable scene file.
var ErrNoScenes = errors.New("scene: no scene files found")

// Entity is one tracked object in a scene file.
type Entity struct {
	ID      string
	X, Y    float64
	Heading *float64
}

// File is a parsed scene file.
type File struct {
	Name     string
	Entities []Entity
}

// LoadDir parses every *.json file in dir. Unreadable files are logged and skipped.
func LoadDir(dir string) ([]File, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, errors.Wrapf(err, "scene: glob %s", dir)
	}
	sort.Strings(paths)

	var files []File
	for _, path := range paths {
		f, err := LoadFile(path)
		if err != nil {
			log.WithField("file", path).WithError(err).Warn("skipping scene file")
			continue
		}
		log.WithFields(log.Fields{"file": f.Name, "entities": len(f.Entities)}).Debug("read scene file")
		files = append(files, f)
	}
	if len(files) == 0 {
		return nil, errors.Wrapf(ErrNoScenes, "dir %s", dir)
	}
	return files, nil
}

// LoadFile parses one scene file.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, errors.Wrapf(err, "scene: read %s", path)
	}
	entities, err := Parse(data)
	if err != nil {
		return File{}, errors.Wrapf(err, "scene: parse %s", path)
	}
	return File{Name: filepath.Base(path), Entities: entities}, nil
}

// Parse extracts entities from a scene document. An entity exists when it has
// a Location key; its Rotation is optional. The id is everything before the
// suffix, so names may contain underscores.
func Parse(data []byte) ([]Entity, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid json")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, errors.New("scene document is not an object")
	}

	byID := map[string]*Entity{}
	headings := map[string]float64{}
	doc.ForEach(func(key, value gjson.Result) bool {
		k := key.String()
		switch {
		case strings.HasSuffix(k, LocationSuffix):
			coords := value.Array()
			if len(coords) < 2 {
				return true
			}
			id := strings.TrimSuffix(k, LocationSuffix)
			byID[id] = &Entity{ID: id, X: coords[0].Float(), Y: coords[1].Float()}
		case strings.HasSuffix(k, RotationSuffix):
			headings[strings.TrimSuffix(k, RotationSuffix)] = yaw(value)
		}
		return true
	})

	entities := make([]Entity, 0, len(byID))
	for id, e := range byID {
		if h, ok := headings[id]; ok {
			e.Heading = &h
		}
		entities = append(entities, *e)
	}
	sort.Slice(entities, func(i, j int) bool { return entities[i].ID < entities[j].ID })
	return entities, nil
}

// yaw reads a rotation given either as a number or as [roll, pitch, yaw].
func yaw(v gjson.Result) float64 {
	if v.IsArray() {
		arr := v.Array()
		if len(arr) == 0 {
			return 0
		}
		return arr[len(arr)-1].Float()
	}
	return v.Float()
}

// Points converts the file's entities for projection.
func (f File) Points() []projection.WorldPoint {
	pts := make([]projection.WorldPoint, len(f.Entities))
	for i, e := range f.Entities {
		pts[i] = projection.WorldPoint{ID: e.ID, X: e.X, Y: e.Y, Heading: e.Heading}
	}
	return pts
}

// ColorIndex picks a stable palette slot for an entity of a file.
func ColorIndex(file, id string, n int) int {
	if n <= 0 {
		return 0
	}
	h := fnv.New32a()
	h.Write([]byte(file))
	h.Write([]byte(id))
	return int(h.Sum32() % uint32(n))
}
