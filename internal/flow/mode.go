// internal/flow/mode.go
package flow

// Mode identifies which generator pipeline produced the artifacts under
// verification. It is resolved once at startup and never changes.
type Mode int

const (
	// TempSense is the default temperature-sensor generator (sky130hd_temp).
	TempSense Mode = iota
	// Ldo is the low-dropout regulator generator (sky130hvl_ldo).
	Ldo
	// Cryo is a low-temperature library variant; the library name is
	// discovered from the reports directory and carried in RunConfig.
	Cryo
)

// LdoArg is the CLI literal that selects Ldo mode.
const LdoArg = "sky130hvl_ldo"

func (m Mode) String() string {
	switch m {
	case TempSense:
		return "sky130hd_temp"
	case Ldo:
		return "sky130hvl_ldo"
	case Cryo:
		return "sky130XX_cryo"
	default:
		return "unknown"
	}
}
