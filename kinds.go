package driftwood

// Kind discriminates the entity union. Every snapshot record carries exactly
// one Kind; all kind-specific behavior (culling box, draw priority, sort
// anchor, effect capabilities) lives in the registry below rather than in
// field-presence checks on the records themselves.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindSeaStack
	KindTree
	KindStone
	KindWildAnimal
	KindStorageBox
	KindStash
	KindCampfire
	KindFurnace
	KindLantern
	KindGrass
	KindPlantedSeed
	KindDroppedItem
	KindHarvestable
	KindBarrel
	KindRainCollector
	KindProjectile
	KindViperSpittle
	KindAnimalCorpse
	KindPlayerCorpse
	KindPlayer
	KindShelter

	kindCount
)

// String returns the snake_case wire name of the kind.
func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindTable[k].name
}

// trajectoryMode selects how a time-parameterized kind's position is derived
// from its spawn state. trajectoryNone means the stored position is
// authoritative.
type trajectoryMode uint8

const (
	trajectoryNone      trajectoryMode = iota
	trajectoryBallistic                // straight-line flight plus gravity
	trajectoryFlat                     // straight-line flight, no gravity
)

// kindInfo is the static per-kind registry entry.
type kindInfo struct {
	name string

	// priority is the base draw order: lower draws earlier (behind).
	// Only relative order matters; kinds sharing a value (projectiles and
	// spittle, the two corpse kinds) are true draw-order peers.
	priority int

	// width and height are the culling AABB, centered on the anchor.
	// Heights are generous for tall sprites so they stay visible (and keep
	// their Y-sort slot) while their base is off screen.
	width, height float64

	// yAnchor is added to the world Y to get the sort Y. Positive values
	// push the sort line toward the sprite's feet/base; negative values
	// pull it up for sprites whose visual base sits above their position.
	yAnchor float64

	trajectory   trajectoryMode
	interpolated bool // position runs through the movement smoother
	mobile       bool // locomotion state machine tracks it
	sways        bool // participates in disturbance/ambient sway
	jitter       bool // static seed-derived rotation/scale variation
	deferShadow  bool // ground shadow drawn in pass 2
}

var kindTable = [kindCount]kindInfo{
	KindUnknown:       {name: "unknown"},
	KindSeaStack:      {name: "sea_stack", priority: 0, width: 400, height: 600, yAnchor: -55},
	KindTree:          {name: "tree", priority: 1, width: 240, height: 320, yAnchor: 24, sways: true, jitter: true},
	KindStone:         {name: "stone", priority: 2, width: 128, height: 96, yAnchor: 16, deferShadow: true},
	KindWildAnimal:    {name: "wild_animal", priority: 3, width: 96, height: 96, yAnchor: 32, interpolated: true, mobile: true},
	KindStorageBox:    {name: "storage_box", priority: 4, width: 96, height: 96, yAnchor: 24},
	KindStash:         {name: "stash", priority: 5, width: 64, height: 64, yAnchor: 16},
	KindCampfire:      {name: "campfire", priority: 6, width: 96, height: 96, yAnchor: 12},
	KindFurnace:       {name: "furnace", priority: 7, width: 128, height: 128, yAnchor: 32},
	KindLantern:       {name: "lantern", priority: 8, width: 48, height: 80, yAnchor: 8},
	KindGrass:         {name: "grass", priority: 9, width: 64, height: 64, yAnchor: 8, sways: true, jitter: true},
	KindPlantedSeed:   {name: "planted_seed", priority: 10, width: 48, height: 48, yAnchor: 4, sways: true},
	KindDroppedItem:   {name: "dropped_item", priority: 11, width: 48, height: 48, yAnchor: 6},
	KindHarvestable:   {name: "harvestable_resource", priority: 12, width: 64, height: 64, yAnchor: 10, sways: true},
	KindBarrel:        {name: "barrel", priority: 13, width: 72, height: 96, yAnchor: 28},
	KindRainCollector: {name: "rain_collector", priority: 14, width: 96, height: 112, yAnchor: 30},
	KindProjectile:    {name: "projectile", priority: 15, width: 32, height: 32, trajectory: trajectoryBallistic},
	KindViperSpittle:  {name: "viper_spittle", priority: 15, width: 24, height: 24, trajectory: trajectoryFlat},
	KindAnimalCorpse:  {name: "animal_corpse", priority: 16, width: 96, height: 64, yAnchor: 12},
	KindPlayerCorpse:  {name: "player_corpse", priority: 16, width: 96, height: 64, yAnchor: 12},
	KindPlayer:        {name: "player", priority: 17, width: 64, height: 64, yAnchor: 48, mobile: true},
	KindShelter:       {name: "shelter", priority: 18, width: 384, height: 384, yAnchor: -100},
}

// Priority returns the kind's base draw priority. Lower values draw earlier.
func (k Kind) Priority() int {
	if k >= kindCount {
		return 0
	}
	return kindTable[k].priority
}

// BoundingBox returns the kind's culling AABB dimensions.
func (k Kind) BoundingBox() (w, h float64) {
	if k >= kindCount {
		return 0, 0
	}
	return kindTable[k].width, kindTable[k].height
}

// YAnchor returns the offset added to an entity's world Y to obtain its
// depth-sort Y.
func (k Kind) YAnchor() float64 {
	if k >= kindCount {
		return 0
	}
	return kindTable[k].yAnchor
}

// Known reports whether k is a recognized kind discriminant.
func (k Kind) Known() bool {
	return k > KindUnknown && k < kindCount
}
