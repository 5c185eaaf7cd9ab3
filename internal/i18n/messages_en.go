package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Attributes
	message.SetString(lang, "ATTRIBUTE.STRENGTH", "Strength")
	message.SetString(lang, "ATTRIBUTE.AGILITY", "Agility")
	message.SetString(lang, "ATTRIBUTE.WITS", "Wits")
	message.SetString(lang, "ATTRIBUTE.EMPATHY", "Empathy")

	// Skills
	message.SetString(lang, "SKILL.MIGHT", "Might")
	message.SetString(lang, "SKILL.ENDURANCE", "Endurance")
	message.SetString(lang, "SKILL.MELEE", "Melee")
	message.SetString(lang, "SKILL.CRAFTING", "Crafting")
	message.SetString(lang, "SKILL.STEALTH", "Stealth")
	message.SetString(lang, "SKILL.SLEIGHT_OF_HAND", "Sleight of Hand")
	message.SetString(lang, "SKILL.MOVE", "Move")
	message.SetString(lang, "SKILL.MARKSMANSHIP", "Marksmanship")
	message.SetString(lang, "SKILL.SCOUTING", "Scouting")
	message.SetString(lang, "SKILL.LORE", "Lore")
	message.SetString(lang, "SKILL.SURVIVAL", "Survival")
	message.SetString(lang, "SKILL.INSIGHT", "Insight")
	message.SetString(lang, "SKILL.MANIPULATION", "Manipulation")
	message.SetString(lang, "SKILL.PERFORMANCE", "Performance")
	message.SetString(lang, "SKILL.HEALING", "Healing")
	message.SetString(lang, "SKILL.ANIMAL_HANDLING", "Animal Handling")

	// Combat actions
	message.SetString(lang, "ACTION.SLASH", "Slash")
	message.SetString(lang, "ACTION.STAB", "Stab")
	message.SetString(lang, "ACTION.PUNCH", "Punch")
	message.SetString(lang, "ACTION.PARRY", "Parry")
	message.SetString(lang, "ACTION.SHOVE", "Shove")
	message.SetString(lang, "ACTION.DISARM", "Disarm")
	message.SetString(lang, "ACTION.SHOOT", "Shoot")
	message.SetString(lang, "HEADER.ARMOR", "Armor")

	// Consumables
	message.SetString(lang, "CONSUMABLE.FOOD", "Food")
	message.SetString(lang, "CONSUMABLE.WATER", "Water")
	message.SetString(lang, "CONSUMABLE.ARROWS", "Arrows")
	message.SetString(lang, "CONSUMABLE.TORCHES", "Torches")
	message.SetString(lang, "SUCCEED", "Succeeded")
	message.SetString(lang, "FAILED", "Failed")

	// Roll card
	message.SetString(lang, "ROLL.SWORDS", "Swords")
	message.SetString(lang, "ROLL.SKULLS", "Skulls")
	message.SetString(lang, "ROLL.PUSHED", "Pushed")
	message.SetString(lang, "ROLL.POWER_LEVEL", "Power level")
	message.SetString(lang, "ROLL.DAMAGE", "Damage")
	message.SetString(lang, "ROLL.ARMOR", "Armor rating")
}
