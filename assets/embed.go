package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Embedded window icons and bundled themes for liv.
//
//go:embed icons/*.png themes/*.theme
var embedded embed.FS

var (
	loadIconsOnce sync.Once
	loadIconsErr  error

	iconImages = map[int]image.Image{}
)

func loadIcons() {
	entries, err := fs.ReadDir(embedded, "icons")
	if err != nil {
		loadIconsErr = err
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".png") {
			continue
		}
		base := strings.TrimSuffix(name, ".png")
		idx := strings.LastIndex(base, "-")
		if idx == -1 || idx == len(base)-1 {
			continue
		}
		size, err := strconv.Atoi(base[idx+1:])
		if err != nil {
			continue
		}
		data, err := embedded.ReadFile(path.Join("icons", name))
		if err != nil {
			loadIconsErr = err
			return
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			loadIconsErr = fmt.Errorf("icon %s: %w", name, err)
			return
		}
		iconImages[size] = img
	}
}

func ensureIcons() error {
	loadIconsOnce.Do(loadIcons)
	return loadIconsErr
}

// IconImage returns the decoded image for an embedded icon of the requested size.
func IconImage(size int) (image.Image, error) {
	if err := ensureIcons(); err != nil {
		return nil, err
	}
	img, ok := iconImages[size]
	if !ok {
		return nil, fmt.Errorf("icon %dpx not embedded", size)
	}
	return img, nil
}

// Icons returns every embedded icon, smallest first.
func Icons() ([]image.Image, error) {
	if err := ensureIcons(); err != nil {
		return nil, err
	}
	sizes := IconSizes()
	out := make([]image.Image, 0, len(sizes))
	for _, s := range sizes {
		out = append(out, iconImages[s])
	}
	return out, nil
}

// IconSizes lists the icon sizes embedded in the binary.
func IconSizes() []int {
	if err := ensureIcons(); err != nil {
		return nil
	}
	sizes := make([]int, 0, len(iconImages))
	for size := range iconImages {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)
	return sizes
}

// Theme returns the raw definition of a bundled theme.
func Theme(name string) ([]byte, error) {
	data, err := embedded.ReadFile(path.Join("themes", name+".theme"))
	if err != nil {
		return nil, fmt.Errorf("theme %q not embedded", name)
	}
	return data, nil
}

// ThemeNames lists the bundled themes.
func ThemeNames() []string {
	entries, err := fs.ReadDir(embedded, "themes")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".theme"))
	}
	return names
}
