package render

// Sound is a sound effect id.
type Sound uint8

const (
	SoundNone Sound = iota
	SoundPlayerShot
	SoundLaser
	SoundRocket
	SoundFlame
	SoundExplosion
	SoundBigExplosion
	SoundPickup
	SoundHealth
	SoundLetter
	SoundWeapon
	SoundPlayerHurt
	SoundPlayerDeath
	SoundEnemyHit
	SoundEnemyShot
	SoundBoxOpen
	SoundDoor
	SoundForceField
	SoundTeleport
	SoundElevator
	SoundBeacon
	SoundJump
	SoundLand
	SoundSwallow
	SoundBounce
)

// Message is a HUD text message id.
type Message uint8

const (
	MessageNone Message = iota
	MessageLettersInOrder
	MessageLettersBonus
	MessageAccessGranted
	MessageNeedKeycard
	MessageNeedKey
	MessageForceFieldDown
	MessageDoorOpened
	MessageBeaconActivated
	MessageAllRadarsDestroyed
	MessageReactorDestroyed
	MessageHealthFull
	MessageCloakOn
	MessageCloakOff
	MessageRapidFireOn
	MessageRapidFireOff
	MessageInventoryFull
	MessageBossDefeated
)

// Tutorial is a once-per-session hint id.
type Tutorial uint8

const (
	TutorialNone Tutorial = iota
	TutorialHealth
	TutorialBox
	TutorialLetters
	TutorialKey
	TutorialKeycard
	TutorialCloak
	TutorialRapidFire
	TutorialWeapon
	TutorialShip
	TutorialElevator
	TutorialTeleporter
	TutorialWater
	TutorialSpider
	TutorialBeacon

	TutorialCount
)

var messageText = map[Message]string{
	MessageLettersInOrder:     "You got all letters in order!",
	MessageLettersBonus:       "Letter bonus",
	MessageAccessGranted:      "Access granted",
	MessageNeedKeycard:        "You need a keycard",
	MessageNeedKey:            "You need a key",
	MessageForceFieldDown:     "Force field deactivated",
	MessageDoorOpened:         "Door opened",
	MessageBeaconActivated:    "Respawn beacon activated",
	MessageAllRadarsDestroyed: "All radar dishes destroyed!",
	MessageReactorDestroyed:   "Reactor destroyed",
	MessageHealthFull:         "Health is full",
	MessageCloakOn:            "Cloaking device active",
	MessageCloakOff:           "Cloaking device disabled",
	MessageRapidFireOn:        "Rapid fire",
	MessageRapidFireOff:       "Rapid fire ended",
	MessageInventoryFull:      "Inventory full",
	MessageBossDefeated:       "The boss is dead",
}

// Text returns the message string.
func (m Message) Text() string {
	return messageText[m]
}

var tutorialText = map[Tutorial]string{
	TutorialHealth:     "Health molecules restore one unit of health.",
	TutorialBox:        "Shoot boxes to find items.",
	TutorialLetters:    "Collect the letters in order for a bonus.",
	TutorialKey:        "Keys open key doors.",
	TutorialKeycard:    "Keycards disable force fields at card readers.",
	TutorialCloak:      "The cloak makes you invincible for a while.",
	TutorialRapidFire:  "Hold fire for rapid fire.",
	TutorialWeapon:     "New weapon collected.",
	TutorialShip:       "Jump to leave the ship.",
	TutorialElevator:   "Press up or down to ride the elevator.",
	TutorialTeleporter: "Press up to teleport.",
	TutorialWater:      "You are underwater.",
	TutorialSpider:     "Shake left and right to get rid of the spider.",
	TutorialBeacon:     "You will respawn here.",
}

// Text returns the tutorial string.
func (t Tutorial) Text() string {
	return tutorialText[t]
}
