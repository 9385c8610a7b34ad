package catalog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/adilbekov/icecream-parlor/internal/model"
)

// Catalog file names expected under the data directory.  Each file holds
// one record per line: a bare or double-quoted name followed by a fixed
// number of comma-separated integers.
const (
	flavorsFile    = "flavors.txt"
	toppingsFile   = "toppings.txt"
	containersFile = "containers.txt"
)

// record is one parsed catalog line before it is typed into a model
// value.
type record struct {
	name string
	nums []int
}

// Load reads the three catalog files from dir and assembles the catalog.
// A missing or malformed file degrades to an empty category with a
// warning; it never aborts the till.  Either a whole file parses and its
// records pass validation, or the category is served empty — partially
// trusted files are not used.
func Load(dir string) *Catalog {
	flavors := loadFlavors(filepath.Join(dir, flavorsFile))
	toppings := loadToppings(filepath.Join(dir, toppingsFile))
	containers := loadContainers(filepath.Join(dir, containersFile))
	return New(flavors, toppings, containers)
}

func loadFlavors(path string) []model.Flavor {
	recs, err := readRecords(path, 1)
	if err != nil {
		log.WithError(err).WithField("file", path).Warn("flavors unavailable, serving empty category")
		return []model.Flavor{}
	}
	out := make([]model.Flavor, 0, len(recs))
	for _, r := range recs {
		if r.nums[0] < 0 {
			log.WithField("file", path).Warnf("negative price for flavor %q, serving empty category", r.name)
			return []model.Flavor{}
		}
		out = append(out, model.Flavor{Name: r.name, PricePerBall: r.nums[0]})
	}
	return out
}

func loadToppings(path string) []model.Topping {
	recs, err := readRecords(path, 1)
	if err != nil {
		log.WithError(err).WithField("file", path).Warn("toppings unavailable, serving empty category")
		return []model.Topping{}
	}
	out := make([]model.Topping, 0, len(recs))
	for _, r := range recs {
		if r.nums[0] < 0 {
			log.WithField("file", path).Warnf("negative price for topping %q, serving empty category", r.name)
			return []model.Topping{}
		}
		out = append(out, model.Topping{Name: r.name, Price: r.nums[0]})
	}
	return out
}

func loadContainers(path string) []model.Container {
	recs, err := readRecords(path, 2)
	if err != nil {
		log.WithError(err).WithField("file", path).Warn("containers unavailable, serving empty category")
		return []model.Container{}
	}
	out := make([]model.Container, 0, len(recs))
	for _, r := range recs {
		if r.nums[0] < 1 || r.nums[1] < 0 {
			log.WithField("file", path).Warnf("bad capacity or price for container %q, serving empty category", r.name)
			return []model.Container{}
		}
		out = append(out, model.Container{TypeName: r.name, MaxBalls: r.nums[0], BasePrice: r.nums[1]})
	}
	return out
}

// readRecords parses one catalog file.  Every non-blank line must carry a
// name plus exactly wantInts integers; the first parse failure poisons
// the whole file so a half-read menu is never served.
func readRecords(path string, wantInts int) ([]record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var recs []record
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != wantInts+1 {
			return nil, fmt.Errorf("%s:%d: expected %d fields, got %d", path, lineNo, wantInts+1, len(parts))
		}
		name := strings.Trim(strings.TrimSpace(parts[0]), `"`)
		if name == "" {
			return nil, fmt.Errorf("%s:%d: empty name", path, lineNo)
		}
		nums := make([]int, 0, wantInts)
		for _, p := range parts[1:] {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %q is not an integer", path, lineNo, strings.TrimSpace(p))
			}
			nums = append(nums, n)
		}
		recs = append(recs, record{name: name, nums: nums})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}
