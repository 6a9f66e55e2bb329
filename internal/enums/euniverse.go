package enums

// EUniverse is the deployment realm a peer belongs to.
type EUniverse uint32

const (
	EUniverseInvalid  EUniverse = 0
	EUniversePublic   EUniverse = 1
	EUniverseBeta     EUniverse = 2
	EUniverseInternal EUniverse = 3
	EUniverseDev      EUniverse = 4
	EUniverseMax      EUniverse = 5
)

var euniverseTable = newTable("EUniverse", map[EUniverse]string{
	EUniverseInvalid:  "Invalid",
	EUniversePublic:   "Public",
	EUniverseBeta:     "Beta",
	EUniverseInternal: "Internal",
	EUniverseDev:      "Dev",
	EUniverseMax:      "Max",
})

// UniverseDomain resolves realm values.
var UniverseDomain Domain = euniverseTable

func (u EUniverse) String() string {
	return euniverseTable.format(u)
}
