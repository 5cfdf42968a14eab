package plan

import (
	"slices"

	"automap/internal/common"
)

// Export turns built configurations into an Overrides document listing every
// exclusion, so a reviewer can see and pin what is left out.
// Nil configurations are skipped. Configurations of the same pair are merged
// into one entry whose ignore list is the union, in first-seen order.
func Export(cfgs ...*Configuration) *Overrides {
	o := &Overrides{
		Version:  CurrentVersion,
		Mappings: make([]Override, 0, len(cfgs)),
	}

	seen := make(map[[2]string]int, len(cfgs))

	for _, cfg := range cfgs {
		if cfg == nil {
			continue
		}

		key := [2]string{common.TypeName(cfg.Source()), common.TypeName(cfg.Target())}

		i, ok := seen[key]
		if !ok {
			seen[key] = len(o.Mappings)
			o.Mappings = append(o.Mappings, Override{Source: key[0], Target: key[1], Ignore: cfg.Ignored()})

			continue
		}

		for _, name := range cfg.Ignored() {
			if !slices.Contains(o.Mappings[i].Ignore, name) {
				o.Mappings[i].Ignore = append(o.Mappings[i].Ignore, name)
			}
		}
	}

	return o
}

// ExportYAML generates the exported document as YAML.
func ExportYAML(cfgs ...*Configuration) ([]byte, error) {
	return Export(cfgs...).Encode()
}
