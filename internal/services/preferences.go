package services

import "github.com/mkendrick/keepsake/internal/models"

// EffectiveFlags resolves the reminder triple a brand-new contact starts
// with: the owner's standing default for the contact's category when one
// exists, otherwise the owner's global default triple. An unrecognized
// category resolves to all-false, so nothing outside the closed enumeration
// can ever trigger a reminder.
//
// Resolution happens once, at contact creation; the stored triple is
// authoritative afterwards. Later category-default edits reach existing
// contacts only through the explicit bulk operations.
func EffectiveFlags(category string, categoryDefaults []models.CategoryDefault, globalDefault models.ReminderFlags) models.ReminderFlags {
	if !models.IsValidCategory(category) {
		return models.ReminderFlags{}
	}

	for _, def := range categoryDefaults {
		if def.Category == category {
			return def.Flags()
		}
	}

	return globalDefault
}
