package boundaries

// Name returns the proper name of a constellation given its 3-letter IAU
// code. Codes carrying a numeric suffix (the boundary catalog splits
// Serpens into SER1 and SER2) resolve to the base constellation.
func Name(code string) (string, bool) {
	if len(code) > 3 {
		code = code[:3]
	}
	name, ok := constellationNames[code]
	return name, ok
}

// constellationNames maps the 88 IAU constellation codes to proper names.
var constellationNames = map[string]string{
	"AND": "Andromeda",
	"ANT": "Antlia",
	"APS": "Apus",
	"AQL": "Aquila",
	"AQR": "Aquarius",
	"ARA": "Ara",
	"ARI": "Aries",
	"AUR": "Auriga",
	"BOO": "Boötes",
	"CAE": "Caelum",
	"CAM": "Camelopardalis",
	"CAP": "Capricornus",
	"CAR": "Carina",
	"CAS": "Cassiopeia",
	"CEN": "Centaurus",
	"CEP": "Cepheus",
	"CET": "Cetus",
	"CHA": "Chamaeleon",
	"CIR": "Circinus",
	"CMA": "Canis Major",
	"CMI": "Canis Minor",
	"CNC": "Cancer",
	"COL": "Columba",
	"COM": "Coma Berenices",
	"CRA": "Corona Australis",
	"CRB": "Corona Borealis",
	"CRT": "Crater",
	"CRU": "Crux",
	"CRV": "Corvus",
	"CVN": "Canes Venatici",
	"CYG": "Cygnus",
	"DEL": "Delphinus",
	"DOR": "Dorado",
	"DRA": "Draco",
	"EQU": "Equuleus",
	"ERI": "Eridanus",
	"FOR": "Fornax",
	"GEM": "Gemini",
	"GRU": "Grus",
	"HER": "Hercules",
	"HOR": "Horologium",
	"HYA": "Hydra",
	"HYI": "Hydrus",
	"IND": "Indus",
	"LAC": "Lacerta",
	"LEO": "Leo",
	"LEP": "Lepus",
	"LIB": "Libra",
	"LMI": "Leo Minor",
	"LUP": "Lupus",
	"LYN": "Lynx",
	"LYR": "Lyra",
	"MEN": "Mensa",
	"MIC": "Microscopium",
	"MON": "Monoceros",
	"MUS": "Musca",
	"NOR": "Norma",
	"OCT": "Octans",
	"OPH": "Ophiuchus",
	"ORI": "Orion",
	"PAV": "Pavo",
	"PEG": "Pegasus",
	"PER": "Perseus",
	"PHE": "Phoenix",
	"PIC": "Pictor",
	"PSA": "Piscis Austrinus",
	"PSC": "Pisces",
	"PUP": "Puppis",
	"PYX": "Pyxis",
	"RET": "Reticulum",
	"SCL": "Sculptor",
	"SCO": "Scorpius",
	"SCT": "Scutum",
	"SER": "Serpens",
	"SEX": "Sextans",
	"SGE": "Sagitta",
	"SGR": "Sagittarius",
	"TAU": "Taurus",
	"TEL": "Telescopium",
	"TRA": "Triangulum Australe",
	"TRI": "Triangulum",
	"TUC": "Tucana",
	"UMA": "Ursa Major",
	"UMI": "Ursa Minor",
	"VEL": "Vela",
	"VIR": "Virgo",
	"VOL": "Volans",
	"VUL": "Vulpecula",
}
