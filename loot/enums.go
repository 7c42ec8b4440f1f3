package loot

// Enumerations render as their lowercased constant name through the Context.
// The zero value of every enum is "unset" and fails to render.

// EntityTarget selects the entity a condition or function reads from.
type EntityTarget int

const (
	TargetThis EntityTarget = iota + 1
	TargetKiller
	TargetDirectKiller
	TargetKillerPlayer
)

var entityTargetNames = [...]string{"", "THIS", "KILLER", "DIRECT_KILLER", "KILLER_PLAYER"}

func (t EntityTarget) EnumName() string { return enumName(entityTargetNames[:], int(t)) }

// EquipmentSlot is a slot an attribute modifier applies to.
type EquipmentSlot int

const (
	SlotMainhand EquipmentSlot = iota + 1
	SlotOffhand
	SlotFeet
	SlotLegs
	SlotChest
	SlotHead
)

var equipmentSlotNames = [...]string{"", "MAINHAND", "OFFHAND", "FEET", "LEGS", "CHEST", "HEAD"}

func (s EquipmentSlot) EnumName() string { return enumName(equipmentSlotNames[:], int(s)) }

// AttributeOperation is how an attribute modifier combines with the base value.
type AttributeOperation int

const (
	OperationAddition AttributeOperation = iota + 1
	OperationMultiplyBase
	OperationMultiplyTotal
)

var attributeOperationNames = [...]string{"", "ADDITION", "MULTIPLY_BASE", "MULTIPLY_TOTAL"}

func (o AttributeOperation) EnumName() string { return enumName(attributeOperationNames[:], int(o)) }

// MapDecoration is the icon drawn on an exploration map.
type MapDecoration int

const (
	DecorationPlayer MapDecoration = iota + 1
	DecorationFrame
	DecorationRedMarker
	DecorationBlueMarker
	DecorationTargetX
	DecorationTargetPoint
	DecorationPlayerOffMap
	DecorationPlayerOffLimits
	DecorationMansion
	DecorationMonument
	DecorationBannerWhite
	DecorationBannerOrange
	DecorationBannerMagenta
	DecorationBannerLightBlue
	DecorationBannerYellow
	DecorationBannerLime
	DecorationBannerPink
	DecorationBannerGray
	DecorationBannerLightGray
	DecorationBannerCyan
	DecorationBannerPurple
	DecorationBannerBlue
	DecorationBannerBrown
	DecorationBannerGreen
	DecorationBannerRed
	DecorationBannerBlack
	DecorationRedX
)

var mapDecorationNames = [...]string{
	"", "PLAYER", "FRAME", "RED_MARKER", "BLUE_MARKER", "TARGET_X", "TARGET_POINT",
	"PLAYER_OFF_MAP", "PLAYER_OFF_LIMITS", "MANSION", "MONUMENT",
	"BANNER_WHITE", "BANNER_ORANGE", "BANNER_MAGENTA", "BANNER_LIGHT_BLUE", "BANNER_YELLOW",
	"BANNER_LIME", "BANNER_PINK", "BANNER_GRAY", "BANNER_LIGHT_GRAY", "BANNER_CYAN",
	"BANNER_PURPLE", "BANNER_BLUE", "BANNER_BROWN", "BANNER_GREEN", "BANNER_RED",
	"BANNER_BLACK", "RED_X",
}

func (d MapDecoration) EnumName() string { return enumName(mapDecorationNames[:], int(d)) }

// CopySource is the holder copy_name and copy_nbt read from.
type CopySource int

const (
	SourceThis CopySource = iota + 1
	SourceKiller
	SourceKillerPlayer
	SourceBlockEntity
)

var copySourceNames = [...]string{"", "THIS", "KILLER", "KILLER_PLAYER", "BLOCK_ENTITY"}

func (s CopySource) EnumName() string { return enumName(copySourceNames[:], int(s)) }

// NbtOperator is how copy_nbt writes into the target path.
type NbtOperator int

const (
	NbtReplace NbtOperator = iota + 1
	NbtAppend
	NbtMerge
)

var nbtOperatorNames = [...]string{"", "REPLACE", "APPEND", "MERGE"}

func (o NbtOperator) EnumName() string { return enumName(nbtOperatorNames[:], int(o)) }

func enumName(names []string, i int) string {
	if i <= 0 || i >= len(names) {
		return ""
	}
	return names[i]
}
