package catalog

import "github.com/dragonnestlite/assetgen/internal/model"

// Voice types resolved against the account's voice list
const (
	VoiceMaleDeep     = "male_deep"
	VoiceMaleOld      = "male_old"
	VoiceFemaleBright = "female_bright"
	VoiceNarrator     = "narrator"
	VoiceMaleWarrior  = "male_warrior"
	VoiceFemaleMage   = "female_mage"
	VoiceMonster      = "monster"
)

// VoiceTypes lists every voice type in assignment order.
var VoiceTypes = []string{
	VoiceMaleDeep, VoiceMaleOld, VoiceFemaleBright, VoiceNarrator,
	VoiceMaleWarrior, VoiceFemaleMage, VoiceMonster,
}

var builtinVoices = []model.VoiceLine{
	{
		Name:      "voice_blacksmith_greet",
		Category:  model.VoiceCategoryNPC,
		Text:      "Welcome, adventurer! Need your weapon sharpened?",
		VoiceType: VoiceMaleDeep,
		ModelID:   "eleven_multilingual_v2",
		Settings:  model.VoiceSettings{Stability: 0.5, SimilarityBoost: 0.8, Style: 0.3},
	},
	{
		Name:      "voice_blacksmith_done",
		Category:  model.VoiceCategoryNPC,
		Text:      "There you go! Good as new, maybe even better!",
		VoiceType: VoiceMaleDeep,
		ModelID:   "eleven_multilingual_v2",
		Settings:  model.VoiceSettings{Stability: 0.5, SimilarityBoost: 0.8, Style: 0.3},
	},
	{
		Name:      "voice_skillmaster_greet",
		Category:  model.VoiceCategoryNPC,
		Text:      "Ah, young one. The path of power awaits. Choose wisely.",
		VoiceType: VoiceMaleOld,
		ModelID:   "eleven_multilingual_v2",
		Settings:  model.VoiceSettings{Stability: 0.6, SimilarityBoost: 0.7, Style: 0.4},
	},
	{
		Name:      "voice_skillmaster_choose",
		Category:  model.VoiceCategoryNPC,
		Text:      "The time has come to choose your destiny. Two paths lie before you. Which will you walk?",
		VoiceType: VoiceMaleOld,
		ModelID:   "eleven_multilingual_v2",
		Settings:  model.VoiceSettings{Stability: 0.6, SimilarityBoost: 0.7, Style: 0.5},
	},
	{
		Name:      "voice_potion_greet",
		Category:  model.VoiceCategoryNPC,
		Text:      "Hello there! Potions, elixirs, all you need for your adventure!",
		VoiceType: VoiceFemaleBright,
		ModelID:   "eleven_multilingual_v2",
		Settings:  model.VoiceSettings{Stability: 0.5, SimilarityBoost: 0.8, Style: 0.6},
	},
	{
		Name:      "voice_narrator_dungeon",
		Category:  model.VoiceCategoryNarration,
		Text:      "A dark force stirs in the depths below. Steel your resolve, adventurer.",
		VoiceType: VoiceNarrator,
		ModelID:   "eleven_multilingual_v2",
		Settings:  model.VoiceSettings{Stability: 0.7, SimilarityBoost: 0.6, Style: 0.5},
	},
	{
		Name:      "voice_narrator_boss",
		Category:  model.VoiceCategoryNarration,
		Text:      "The ancient dragon awakens. Prepare for the fight of your life!",
		VoiceType: VoiceNarrator,
		ModelID:   "eleven_multilingual_v2",
		Settings:  model.VoiceSettings{Stability: 0.7, SimilarityBoost: 0.6, Style: 0.6},
	},
	{
		Name:      "voice_narrator_victory",
		Category:  model.VoiceCategoryNarration,
		Text:      "Victory! The darkness recedes... for now.",
		VoiceType: VoiceNarrator,
		ModelID:   "eleven_multilingual_v2",
		Settings:  model.VoiceSettings{Stability: 0.7, SimilarityBoost: 0.6, Style: 0.4},
	},
	{
		Name:      "voice_fighter_atk_01",
		Category:  model.VoiceCategoryFighter,
		Text:      "Haaah!",
		VoiceType: VoiceMaleWarrior,
		ModelID:   "eleven_multilingual_v2",
		Settings:  model.VoiceSettings{Stability: 0.3, SimilarityBoost: 0.9, Style: 0.8},
	},
	{
		Name:      "voice_fighter_atk_02",
		Category:  model.VoiceCategoryFighter,
		Text:      "Take this!",
		VoiceType: VoiceMaleWarrior,
		ModelID:   "eleven_multilingual_v2",
		Settings:  model.VoiceSettings{Stability: 0.3, SimilarityBoost: 0.9, Style: 0.8},
	},
	{
		Name:      "voice_fighter_atk_03",
		Category:  model.VoiceCategoryFighter,
		Text:      "Hyaaa!",
		VoiceType: VoiceMaleWarrior,
		ModelID:   "eleven_multilingual_v2",
		Settings:  model.VoiceSettings{Stability: 0.3, SimilarityBoost: 0.9, Style: 0.8},
	},
	{
		Name:      "voice_mage_cast_01",
		Category:  model.VoiceCategoryMage,
		Text:      "By the elements!",
		VoiceType: VoiceFemaleMage,
		ModelID:   "eleven_multilingual_v2",
		Settings:  model.VoiceSettings{Stability: 0.4, SimilarityBoost: 0.8, Style: 0.7},
	},
	{
		Name:      "voice_mage_cast_02",
		Category:  model.VoiceCategoryMage,
		Text:      "Feel my power!",
		VoiceType: VoiceFemaleMage,
		ModelID:   "eleven_multilingual_v2",
		Settings:  model.VoiceSettings{Stability: 0.4, SimilarityBoost: 0.8, Style: 0.7},
	},
	{
		Name:      "voice_mage_cast_03",
		Category:  model.VoiceCategoryMage,
		Text:      "Burn!",
		VoiceType: VoiceFemaleMage,
		ModelID:   "eleven_multilingual_v2",
		Settings:  model.VoiceSettings{Stability: 0.4, SimilarityBoost: 0.8, Style: 0.7},
	},
	{
		Name:      "voice_dragon_roar",
		Category:  model.VoiceCategoryMonster,
		Text:      "RRRROOOAAAARRRR!",
		VoiceType: VoiceMonster,
		ModelID:   "eleven_multilingual_v2",
		Settings:  model.VoiceSettings{Stability: 0.2, SimilarityBoost: 0.5, Style: 0.9},
	},
}
