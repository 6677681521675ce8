package catalog

import (
	"go.uber.org/zap"

	"github.com/dragonnestlite/assetgen/internal/logging"
)

// Filter keeps the definitions whose name is in names (when given) and whose
// category is in categories (when given), preserving order. valid lists the
// categories the table knows. Unknown names and categories are logged and
// match nothing; when every requested category is unknown the result is
// empty.
func Filter[T Entry](defs []T, names, categories, valid []string, logger *zap.Logger) []T {
	logger = logging.OrNop(logger)

	known := make(map[string]bool, len(defs))
	for _, d := range defs {
		known[d.AssetName()] = true
	}
	nameSet := make(map[string]bool, len(names))
	for _, n := range names {
		if !known[n] {
			logger.Warn("unknown asset name", zap.String("name", n))
			continue
		}
		nameSet[n] = true
	}

	validSet := make(map[string]bool, len(valid))
	for _, c := range valid {
		validSet[c] = true
	}
	catSet := make(map[string]bool, len(categories))
	for _, c := range categories {
		if !validSet[c] {
			logger.Warn("unknown category", zap.String("category", c), zap.Strings("valid", valid))
			continue
		}
		catSet[c] = true
	}

	if len(names) > 0 && len(nameSet) == 0 {
		return nil
	}
	if len(categories) > 0 && len(catSet) == 0 {
		return nil
	}

	var out []T
	for _, d := range defs {
		if len(nameSet) > 0 && !nameSet[d.AssetName()] {
			continue
		}
		if len(catSet) > 0 && !catSet[d.AssetCategory()] {
			continue
		}
		out = append(out, d)
	}
	return out
}
