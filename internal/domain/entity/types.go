package entity

import "image/color"

// EntityID is a unique identifier for an entity within one level
type EntityID uint32

// PlatformKind identifies a platform's behavior category.
// Physics treats all kinds alike; the kind only selects the palette.
type PlatformKind int

const (
	PlatformStatic PlatformKind = iota
	PlatformMoving
	PlatformFalling
	PlatformDisappearing
)

// PlatformColors holds body and top-highlight colors per platform kind
var PlatformColors = map[PlatformKind][2]color.RGBA{
	PlatformStatic:       {{0x00, 0xff, 0x00, 0xff}, {0x55, 0xff, 0x55, 0xff}},
	PlatformMoving:       {{0xff, 0xff, 0x00, 0xff}, {0xff, 0xff, 0x55, 0xff}},
	PlatformDisappearing: {{0xff, 0x00, 0xff, 0xff}, {0xff, 0x55, 0xff, 0xff}},
	PlatformFalling:      {{0xff, 0x88, 0x00, 0xff}, {0xff, 0xaa, 0x00, 0xff}},
}

// EnemyKind identifies an enemy's category. AI is kind-independent.
type EnemyKind int

const (
	EnemyUnknown EnemyKind = iota
	EnemyVirus
	EnemyMalware
	EnemySpyware
	EnemyWorm
	EnemyRootkit
	EnemyBotnet
	EnemyKeylogger
	EnemyRansomware
	EnemyAdware
	EnemySupervirus
	EnemyMegatrojan
	EnemyUltraworm
	EnemyHypermalware
)

// EnemyAttrs are the presentation attributes of an enemy kind
type EnemyAttrs struct {
	Name  string
	Color color.RGBA
}

var enemyAttrs = [...]EnemyAttrs{
	EnemyUnknown:      {"unknown", color.RGBA{0xff, 0x00, 0xff, 0xff}},
	EnemyVirus:        {"virus", color.RGBA{0xff, 0x4b, 0x4b, 0xff}},
	EnemyMalware:      {"malware", color.RGBA{0xff, 0x8a, 0x4b, 0xff}},
	EnemySpyware:      {"spyware", color.RGBA{0xff, 0xdb, 0x4b, 0xff}},
	EnemyWorm:         {"worm", color.RGBA{0xa8, 0xff, 0x4b, 0xff}},
	EnemyRootkit:      {"rootkit", color.RGBA{0x4b, 0xff, 0xa8, 0xff}},
	EnemyBotnet:       {"botnet", color.RGBA{0x4b, 0xb8, 0xff, 0xff}},
	EnemyKeylogger:    {"keylogger", color.RGBA{0x8a, 0x4b, 0xff, 0xff}},
	EnemyRansomware:   {"ransomware", color.RGBA{0xff, 0x4b, 0xda, 0xff}},
	EnemyAdware:       {"adware", color.RGBA{0xff, 0x4b, 0x8d, 0xff}},
	EnemySupervirus:   {"supervirus", color.RGBA{0xff, 0x00, 0x00, 0xff}},
	EnemyMegatrojan:   {"megatrojan", color.RGBA{0xcc, 0x00, 0x00, 0xff}},
	EnemyUltraworm:    {"ultraworm", color.RGBA{0x99, 0x00, 0x00, 0xff}},
	EnemyHypermalware: {"hypermalware", color.RGBA{0x66, 0x00, 0x00, 0xff}},
}

// Attrs returns the attributes of the kind, falling back to EnemyUnknown
func (k EnemyKind) Attrs() EnemyAttrs {
	if k < 0 || int(k) >= len(enemyAttrs) {
		return enemyAttrs[EnemyUnknown]
	}
	return enemyAttrs[k]
}

// String returns the kind's config name
func (k EnemyKind) String() string {
	return k.Attrs().Name
}

// ParseEnemyKind maps a config name to a kind. Unrecognized names map to EnemyUnknown.
func ParseEnemyKind(name string) EnemyKind {
	for k, a := range enemyAttrs {
		if a.Name == name && EnemyKind(k) != EnemyUnknown {
			return EnemyKind(k)
		}
	}
	return EnemyUnknown
}

// CollectibleKind identifies a collectible's category
type CollectibleKind int

const (
	CollectibleUnknown CollectibleKind = iota
	CollectibleFirewall
	CollectibleAntivirus
	CollectibleEncryption
	CollectiblePassword
	CollectibleVPN
	CollectibleBackup
	CollectibleMasterKey
	CollectibleQuantumEncryption
	CollectibleNeuralAntivirus
	CollectibleBlockchainVPN
	CollectibleAIBackup
)

// CollectibleAttrs are the presentation attributes of a collectible kind
type CollectibleAttrs struct {
	Name   string
	Color  color.RGBA
	Symbol string
	Tips   []string
}

var collectibleAttrs = [...]CollectibleAttrs{
	CollectibleUnknown:           {"unknown", color.RGBA{0xff, 0xff, 0xff, 0xff}, "?", genericTips},
	CollectibleFirewall:          {"firewall", color.RGBA{0x00, 0xff, 0x00, 0xff}, "F", firewallTips},
	CollectibleAntivirus:         {"antivirus", color.RGBA{0x00, 0xff, 0xff, 0xff}, "A", antivirusTips},
	CollectibleEncryption:        {"encryption", color.RGBA{0xff, 0xff, 0x00, 0xff}, "E", encryptionTips},
	CollectiblePassword:          {"password", color.RGBA{0xff, 0x00, 0xff, 0xff}, "P", passwordTips},
	CollectibleVPN:               {"vpn", color.RGBA{0x00, 0xff, 0x88, 0xff}, "V", vpnTips},
	CollectibleBackup:            {"backup", color.RGBA{0x88, 0x00, 0xff, 0xff}, "B", backupTips},
	CollectibleMasterKey:         {"masterkey", color.RGBA{0xff, 0xff, 0xff, 0xff}, "!", masterKeyTips},
	CollectibleQuantumEncryption: {"quantumencryption", color.RGBA{0x00, 0xaa, 0xff, 0xff}, "Q", quantumTips},
	CollectibleNeuralAntivirus:   {"neuralantivirus", color.RGBA{0xaa, 0x00, 0xff, 0xff}, "N", neuralTips},
	CollectibleBlockchainVPN:     {"blockchainvpn", color.RGBA{0xff, 0xaa, 0x88, 0xff}, "$", blockchainTips},
	CollectibleAIBackup:          {"aibackup", color.RGBA{0x88, 0xff, 0xaa, 0xff}, "S", aiBackupTips},
}

// Attrs returns the attributes of the kind, falling back to CollectibleUnknown
func (k CollectibleKind) Attrs() CollectibleAttrs {
	if k < 0 || int(k) >= len(collectibleAttrs) {
		return collectibleAttrs[CollectibleUnknown]
	}
	return collectibleAttrs[k]
}

// String returns the kind's config name
func (k CollectibleKind) String() string {
	return k.Attrs().Name
}

// ParseCollectibleKind maps a config name to a kind. Unrecognized names map to CollectibleUnknown.
func ParseCollectibleKind(name string) CollectibleKind {
	for k, a := range collectibleAttrs {
		if a.Name == name && CollectibleKind(k) != CollectibleUnknown {
			return CollectibleKind(k)
		}
	}
	return CollectibleUnknown
}

// ChaserKind identifies how a chaser is drawn
type ChaserKind int

const (
	ChaserLava ChaserKind = iota
	ChaserWall
)

// ChaserColors maps chaser kinds to their fill color
var ChaserColors = map[ChaserKind]color.RGBA{
	ChaserLava: {0xff, 0x44, 0x00, 0xcc},
	ChaserWall: {0x88, 0x00, 0x22, 0xcc},
}

// ParseChaserKind maps a config name to a kind, defaulting to ChaserLava
func ParseChaserKind(name string) ChaserKind {
	if name == "wall" {
		return ChaserWall
	}
	return ChaserLava
}
