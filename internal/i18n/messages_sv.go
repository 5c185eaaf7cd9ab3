package i18n

import "golang.org/x/text/message"

func init() {
	lang := swedish

	// Attributes
	message.SetString(lang, "ATTRIBUTE.STRENGTH", "Styrka")
	message.SetString(lang, "ATTRIBUTE.AGILITY", "Smidighet")
	message.SetString(lang, "ATTRIBUTE.WITS", "List")
	message.SetString(lang, "ATTRIBUTE.EMPATHY", "Inlevelse")

	// Skills
	message.SetString(lang, "SKILL.MIGHT", "Kraftprov")
	message.SetString(lang, "SKILL.ENDURANCE", "Uthållighet")
	message.SetString(lang, "SKILL.MELEE", "Närkamp")
	message.SetString(lang, "SKILL.CRAFTING", "Hantverk")
	message.SetString(lang, "SKILL.STEALTH", "Smyga")
	message.SetString(lang, "SKILL.SLEIGHT_OF_HAND", "Fingerfärdighet")
	message.SetString(lang, "SKILL.MOVE", "Rörlighet")
	message.SetString(lang, "SKILL.MARKSMANSHIP", "Skytte")
	message.SetString(lang, "SKILL.SCOUTING", "Speja")
	message.SetString(lang, "SKILL.LORE", "Bildning")
	message.SetString(lang, "SKILL.SURVIVAL", "Överlevnad")
	message.SetString(lang, "SKILL.INSIGHT", "Genomskåda")
	message.SetString(lang, "SKILL.MANIPULATION", "Manipulera")
	message.SetString(lang, "SKILL.PERFORMANCE", "Uppträda")
	message.SetString(lang, "SKILL.HEALING", "Läkekonst")
	message.SetString(lang, "SKILL.ANIMAL_HANDLING", "Djurhantering")

	// Combat actions
	message.SetString(lang, "ACTION.SLASH", "Hugg")
	message.SetString(lang, "ACTION.STAB", "Stick")
	message.SetString(lang, "ACTION.PUNCH", "Slag")
	message.SetString(lang, "ACTION.PARRY", "Parera")
	message.SetString(lang, "ACTION.SHOVE", "Knuffa")
	message.SetString(lang, "ACTION.DISARM", "Avväpna")
	message.SetString(lang, "ACTION.SHOOT", "Skjuta")
	message.SetString(lang, "HEADER.ARMOR", "Rustning")

	// Consumables
	message.SetString(lang, "CONSUMABLE.FOOD", "Mat")
	message.SetString(lang, "CONSUMABLE.WATER", "Vatten")
	message.SetString(lang, "CONSUMABLE.ARROWS", "Pilar")
	message.SetString(lang, "CONSUMABLE.TORCHES", "Facklor")
	message.SetString(lang, "SUCCEED", "Lyckades")
	message.SetString(lang, "FAILED", "Misslyckades")

	// Roll card
	message.SetString(lang, "ROLL.SWORDS", "Svärd")
	message.SetString(lang, "ROLL.SKULLS", "Dödskallar")
	message.SetString(lang, "ROLL.PUSHED", "Pressat")
	message.SetString(lang, "ROLL.POWER_LEVEL", "Kraftnivå")
	message.SetString(lang, "ROLL.DAMAGE", "Skada")
	message.SetString(lang, "ROLL.ARMOR", "Rustningsvärde")
}
