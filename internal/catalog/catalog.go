package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

// Catalog is the read-only universe of valid form values, derived from the
// reference resale dataset. It is built once at startup and never mutated,
// so it is safe to share across requests without locking.
type Catalog struct {
	brands      []string
	brandSet    map[string]struct{}
	brandModels map[string][]string
	modelSets   map[string]map[string]struct{}

	storageOptions []float64
	storageSet     map[float64]struct{}
	ramOptions     []float64
	ramSet         map[float64]struct{}

	warrantyStatuses []string
	warrantySet      map[string]struct{}
	screenConditions []string
	screenSet        map[string]struct{}
	bodyConditions   []string
	bodySet          map[string]struct{}

	ageMin, ageMax         int
	batteryMin, batteryMax int
}

// Columns the loader requires from the reference CSV.
var requiredColumns = []string{
	"brand_name", "Name", "storage", "RAM", "age",
	"warranty_status", "screen_condition", "body_condition", "battery_health",
}

// Load parses the reference dataset and builds the catalog of valid values.
// Every enumeration comes from the same dataset snapshot the model was
// trained against.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open reference dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}

	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := colIndex[name]; !ok {
			return nil, fmt.Errorf("reference dataset missing column %q", name)
		}
	}

	c := &Catalog{
		brandSet:    make(map[string]struct{}),
		brandModels: make(map[string][]string),
		modelSets:   make(map[string]map[string]struct{}),
		storageSet:  make(map[float64]struct{}),
		ramSet:      make(map[float64]struct{}),
		warrantySet: make(map[string]struct{}),
		screenSet:   make(map[string]struct{}),
		bodySet:     make(map[string]struct{}),
	}

	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset row: %w", err)
		}

		brand := record[colIndex["brand_name"]]
		name := record[colIndex["Name"]]

		storage, err := strconv.ParseFloat(record[colIndex["storage"]], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad storage value %q", rows+1, record[colIndex["storage"]])
		}
		ram, err := strconv.ParseFloat(record[colIndex["RAM"]], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad RAM value %q", rows+1, record[colIndex["RAM"]])
		}
		age, err := strconv.ParseFloat(record[colIndex["age"]], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad age value %q", rows+1, record[colIndex["age"]])
		}
		battery, err := strconv.ParseFloat(record[colIndex["battery_health"]], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad battery_health value %q", rows+1, record[colIndex["battery_health"]])
		}

		if _, seen := c.brandSet[brand]; !seen {
			c.brandSet[brand] = struct{}{}
			c.modelSets[brand] = make(map[string]struct{})
		}
		if _, seen := c.modelSets[brand][name]; !seen {
			c.modelSets[brand][name] = struct{}{}
		}
		c.storageSet[storage] = struct{}{}
		c.ramSet[ram] = struct{}{}
		c.warrantySet[record[colIndex["warranty_status"]]] = struct{}{}
		c.screenSet[record[colIndex["screen_condition"]]] = struct{}{}
		c.bodySet[record[colIndex["body_condition"]]] = struct{}{}

		ageInt := int(age)
		if rows == 0 {
			c.ageMin, c.ageMax = ageInt, ageInt
			c.batteryMin, c.batteryMax = int(battery), int(battery)
		} else {
			if ageInt < c.ageMin {
				c.ageMin = ageInt
			}
			if ageInt > c.ageMax {
				c.ageMax = ageInt
			}
			if int(battery) < c.batteryMin {
				c.batteryMin = int(battery)
			}
			if int(battery) > c.batteryMax {
				c.batteryMax = int(battery)
			}
		}
		rows++
	}

	if rows == 0 {
		return nil, fmt.Errorf("reference dataset %s contains no records", path)
	}

	c.brands = sortedStrings(c.brandSet)
	for brand, models := range c.modelSets {
		c.brandModels[brand] = sortedStrings(models)
	}
	c.storageOptions = sortedFloats(c.storageSet)
	c.ramOptions = sortedFloats(c.ramSet)
	c.warrantyStatuses = sortedStrings(c.warrantySet)
	c.screenConditions = sortedStrings(c.screenSet)
	c.bodyConditions = sortedStrings(c.bodySet)

	return c, nil
}

func sortedStrings(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func sortedFloats(set map[float64]struct{}) []float64 {
	out := make([]float64, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}

// Brands returns all known brand names, sorted.
func (c *Catalog) Brands() []string {
	return c.brands
}

// ModelsFor returns the sorted model names for a brand. The second return
// is false when the brand is not in the catalog.
func (c *Catalog) ModelsFor(brand string) ([]string, bool) {
	models, ok := c.brandModels[brand]
	return models, ok
}

// HasBrand reports whether the brand appears in the reference dataset.
func (c *Catalog) HasBrand(brand string) bool {
	_, ok := c.brandSet[brand]
	return ok
}

// HasModel reports whether the model name appears under the given brand.
// Model validity is brand-scoped: the same name under another brand does
// not count.
func (c *Catalog) HasModel(brand, name string) bool {
	models, ok := c.modelSets[brand]
	if !ok {
		return false
	}
	_, ok = models[name]
	return ok
}

// HasStorage reports exact membership in the observed storage values.
func (c *Catalog) HasStorage(storage float64) bool {
	_, ok := c.storageSet[storage]
	return ok
}

// HasRAM reports exact membership in the observed RAM values.
func (c *Catalog) HasRAM(ram float64) bool {
	_, ok := c.ramSet[ram]
	return ok
}

// HasWarrantyStatus reports membership in the observed warranty labels.
func (c *Catalog) HasWarrantyStatus(status string) bool {
	_, ok := c.warrantySet[status]
	return ok
}

// HasScreenCondition reports membership in the observed screen labels.
func (c *Catalog) HasScreenCondition(cond string) bool {
	_, ok := c.screenSet[cond]
	return ok
}

// HasBodyCondition reports membership in the observed body labels.
func (c *Catalog) HasBodyCondition(cond string) bool {
	_, ok := c.bodySet[cond]
	return ok
}

// StorageOptions returns the sorted storage values.
func (c *Catalog) StorageOptions() []float64 { return c.storageOptions }

// RAMOptions returns the sorted RAM values.
func (c *Catalog) RAMOptions() []float64 { return c.ramOptions }

// WarrantyStatuses returns the sorted warranty labels.
func (c *Catalog) WarrantyStatuses() []string { return c.warrantyStatuses }

// ScreenConditions returns the sorted screen condition labels.
func (c *Catalog) ScreenConditions() []string { return c.screenConditions }

// BodyConditions returns the sorted body condition labels.
func (c *Catalog) BodyConditions() []string { return c.bodyConditions }

// AgeRange returns the inclusive age bounds in months.
func (c *Catalog) AgeRange() (min, max int) {
	return c.ageMin, c.ageMax
}

// BatteryRange returns the inclusive battery health bounds in percent.
func (c *Catalog) BatteryRange() (min, max int) {
	return c.batteryMin, c.batteryMax
}
