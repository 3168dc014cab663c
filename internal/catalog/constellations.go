package catalog

// constellations is the facility star catalogue. Names are the canonical
// identifiers accepted as science plan targets.
var constellations = []Constellation{
	{Name: "Andromeda", EnglishName: "Andromeda", Area: 722.278, Quadrant: NQ1, StartLatitude: 90, EndLatitude: 40, Month: 11},
	{Name: "Antlia", EnglishName: "Air Pump", Area: 238.901, Quadrant: SQ2, StartLatitude: 45, EndLatitude: 90, Month: 4},
	{Name: "Apus", EnglishName: "Bird of Paradise", Area: 206.327, Quadrant: SQ3, StartLatitude: 5, EndLatitude: 90, Month: 7},
	{Name: "Aquarius", EnglishName: "Water Bearer", Area: 979.854, Quadrant: SQ4, StartLatitude: 65, EndLatitude: 90, Month: 10},
	{Name: "Aquila", EnglishName: "Eagle", Area: 652.473, Quadrant: NQ4, StartLatitude: 90, EndLatitude: 75, Month: 8},
	{Name: "Ara", EnglishName: "Altar", Area: 237.057, Quadrant: SQ3, StartLatitude: 25, EndLatitude: 90, Month: 7},
	{Name: "Aries", EnglishName: "Ram", Area: 441.395, Quadrant: NQ1, StartLatitude: 90, EndLatitude: 60, Month: 12},
	{Name: "Auriga", EnglishName: "Charioteer", Area: 657.438, Quadrant: NQ2, StartLatitude: 90, EndLatitude: 40, Month: 2},
	{Name: "Boötes", EnglishName: "Herdsman", Area: 906.831, Quadrant: NQ3, StartLatitude: 90, EndLatitude: 50, Month: 6},
	{Name: "Caelum", EnglishName: "Chisel", Area: 124.865, Quadrant: SQ1, StartLatitude: 40, EndLatitude: 90, Month: 1},
	{Name: "Camelopardalis", EnglishName: "Giraffe", Area: 756.828, Quadrant: NQ2, StartLatitude: 90, EndLatitude: 10, Month: 2},
	{Name: "Cancer", EnglishName: "Crab", Area: 505.872, Quadrant: NQ2, StartLatitude: 90, EndLatitude: 60, Month: 3},
	{Name: "CanesVenatici", EnglishName: "Hunting Dogs", Area: 465.194, Quadrant: NQ3, StartLatitude: 90, EndLatitude: 40, Month: 5},
	{Name: "CanisMajor", EnglishName: "Greater Dog", Area: 380.118, Quadrant: SQ2, StartLatitude: 60, EndLatitude: 90, Month: 2},
	{Name: "CanisMinor", EnglishName: "Lesser Dog", Area: 183.367, Quadrant: NQ2, StartLatitude: 90, EndLatitude: 75, Month: 3},
	{Name: "Capricornus", EnglishName: "Sea Goat", Area: 413.947, Quadrant: SQ4, StartLatitude: 60, EndLatitude: 90, Month: 9},
	{Name: "Carina", EnglishName: "Keel", Area: 494.184, Quadrant: SQ2, StartLatitude: 20, EndLatitude: 90, Month: 3},
	{Name: "Cassiopeia", EnglishName: "Cassiopeia", Area: 598.407, Quadrant: NQ1, StartLatitude: 90, EndLatitude: 20, Month: 11},
	{Name: "Centaurus", EnglishName: "Centaur", Area: 1060.422, Quadrant: SQ3, StartLatitude: 25, EndLatitude: 90, Month: 5},
	{Name: "Cepheus", EnglishName: "Cepheus", Area: 587.787, Quadrant: NQ4, StartLatitude: 90, EndLatitude: 10, Month: 11},
	{Name: "Cetus", EnglishName: "Whale (or Sea Monster)", Area: 1231.411, Quadrant: SQ1, StartLatitude: 70, EndLatitude: 90, Month: 11},
	{Name: "Chamaeleon", EnglishName: "Chameleon", Area: 131.592, Quadrant: SQ2, StartLatitude: 0, EndLatitude: 90, Month: 4},
	{Name: "Circinus", EnglishName: "Compass (drafting tool)", Area: 93.353, Quadrant: SQ3, StartLatitude: 30, EndLatitude: 90, Month: 7},
	{Name: "Columba", EnglishName: "Dove", Area: 270.184, Quadrant: SQ1, StartLatitude: 45, EndLatitude: 90, Month: 2},
	{Name: "ComaBerenices", EnglishName: "Berenice’s Hair", Area: 386.475, Quadrant: NQ3, StartLatitude: 90, EndLatitude: 70, Month: 5},
	{Name: "CoronaAustralis", EnglishName: "Southern Crown", Area: 127.696, Quadrant: SQ4, StartLatitude: 40, EndLatitude: 90, Month: 8},
	{Name: "CoronaBorealis", EnglishName: "Northern Crown", Area: 178.71, Quadrant: NQ3, StartLatitude: 90, EndLatitude: 50, Month: 7},
	{Name: "Corvus", EnglishName: "Crow", Area: 183.801, Quadrant: SQ3, StartLatitude: 60, EndLatitude: 90, Month: 5},
	{Name: "Crater", EnglishName: "Cup", Area: 282.398, Quadrant: SQ2, StartLatitude: 65, EndLatitude: 90, Month: 4},
	{Name: "Crux", EnglishName: "Southern Cross", Area: 68.447, Quadrant: SQ3, StartLatitude: 20, EndLatitude: 90, Month: 5},
	{Name: "Cygnus", EnglishName: "Swan", Area: 803.983, Quadrant: NQ4, StartLatitude: 90, EndLatitude: 40, Month: 9},
	{Name: "Delphinus", EnglishName: "Dolphin", Area: 188.549, Quadrant: NQ4, StartLatitude: 90, EndLatitude: 70, Month: 9},
	{Name: "Dorado", EnglishName: "Dolphinfish", Area: 179.173, Quadrant: SQ1, StartLatitude: 20, EndLatitude: 90, Month: 1},
	{Name: "Draco", EnglishName: "Dragon", Area: 1082.952, Quadrant: NQ3, StartLatitude: 90, EndLatitude: 15, Month: 7},
	{Name: "Equuleus", EnglishName: "Little Horse (Foal)", Area: 71.641, Quadrant: NQ4, StartLatitude: 90, EndLatitude: 80, Month: 9},
	{Name: "Eridanus", EnglishName: "Eridanus (river)", Area: 1137.919, Quadrant: SQ1, StartLatitude: 32, EndLatitude: 90, Month: 12},
	{Name: "Fornax", EnglishName: "Furnace", Area: 397.502, Quadrant: SQ1, StartLatitude: 50, EndLatitude: 90, Month: 12},
	{Name: "Gemini", EnglishName: "Twins", Area: 513.761, Quadrant: NQ2, StartLatitude: 90, EndLatitude: 60, Month: 2},
	{Name: "Grus", EnglishName: "Crane", Area: 365.513, Quadrant: SQ4, StartLatitude: 34, EndLatitude: 90, Month: 10},
	{Name: "Hercules", EnglishName: "Hercules", Area: 1225.148, Quadrant: NQ3, StartLatitude: 90, EndLatitude: 50, Month: 7},
	{Name: "Horologium", EnglishName: "Pendulum Clock", Area: 248.885, Quadrant: SQ1, StartLatitude: 30, EndLatitude: 90, Month: 12},
	{Name: "Hydra", EnglishName: "Hydra", Area: 1302.844, Quadrant: SQ2, StartLatitude: 54, EndLatitude: 83, Month: 4},
	{Name: "Hydrus", EnglishName: "Water Snake", Area: 243.035, Quadrant: SQ1, StartLatitude: 8, EndLatitude: 90, Month: 11},
	{Name: "Indus", EnglishName: "Indian", Area: 294.006, Quadrant: SQ4, StartLatitude: 15, EndLatitude: 90, Month: 9},
	{Name: "Lacerta", EnglishName: "Lizard", Area: 200.688, Quadrant: NQ4, StartLatitude: 90, EndLatitude: 40, Month: 10},
	{Name: "Leo", EnglishName: "Lion", Area: 946.964, Quadrant: NQ2, StartLatitude: 90, EndLatitude: 65, Month: 4},
	{Name: "LeoMinor", EnglishName: "Lesser Lion", Area: 231.956, Quadrant: NQ2, StartLatitude: 90, EndLatitude: 45, Month: 4},
	{Name: "Lepus", EnglishName: "Hare", Area: 290.291, Quadrant: SQ1, StartLatitude: 63, EndLatitude: 90, Month: 1},
	{Name: "Libra", EnglishName: "Scales", Area: 538.052, Quadrant: SQ3, StartLatitude: 65, EndLatitude: 90, Month: 6},
	{Name: "Lupus", EnglishName: "Wolf", Area: 333.683, Quadrant: SQ3, StartLatitude: 35, EndLatitude: 90, Month: 6},
	{Name: "Lynx", EnglishName: "Lynx", Area: 545.386, Quadrant: NQ2, StartLatitude: 90, EndLatitude: 55, Month: 3},
	{Name: "Lyra", EnglishName: "Lyre", Area: 286.476, Quadrant: NQ4, StartLatitude: 90, EndLatitude: 40, Month: 8},
	{Name: "Mensa", EnglishName: "Table Mountain (Mons Mensae)", Area: 153.484, Quadrant: SQ1, StartLatitude: 4, EndLatitude: 90, Month: 1},
	{Name: "Microscopium", EnglishName: "Microscope", Area: 209.513, Quadrant: SQ4, StartLatitude: 45, EndLatitude: 90, Month: 9},
	{Name: "Monoceros", EnglishName: "Unicorn", Area: 481.569, Quadrant: NQ2, StartLatitude: 75, EndLatitude: 90, Month: 2},
	{Name: "Musca", EnglishName: "Fly", Area: 138.355, Quadrant: SQ3, StartLatitude: 10, EndLatitude: 90, Month: 5},
	{Name: "Norma", EnglishName: "Level", Area: 165.29, Quadrant: SQ3, StartLatitude: 30, EndLatitude: 90, Month: 7},
	{Name: "Octans", EnglishName: "Octant", Area: 291.045, Quadrant: SQ4, StartLatitude: 0, EndLatitude: 90, Month: 10},
	{Name: "Ophiuchus", EnglishName: "Serpent Bearer", Area: 948.34, Quadrant: SQ3, StartLatitude: 80, EndLatitude: 80, Month: 7},
	{Name: "Orion", EnglishName: "Orion (the Hunter)", Area: 594.12, Quadrant: NQ1, StartLatitude: 85, EndLatitude: 75, Month: 1},
	{Name: "Pavo", EnglishName: "Peacock", Area: 377.666, Quadrant: SQ4, StartLatitude: 30, EndLatitude: 90, Month: 8},
	{Name: "Pegasus", EnglishName: "Pegasus", Area: 1120.794, Quadrant: NQ4, StartLatitude: 90, EndLatitude: 60, Month: 10},
	{Name: "Perseus", EnglishName: "Perseus", Area: 614.997, Quadrant: NQ1, StartLatitude: 90, EndLatitude: 35, Month: 12},
	{Name: "Phoenix", EnglishName: "Phoenix", Area: 469.319, Quadrant: SQ1, StartLatitude: 32, EndLatitude: 80, Month: 11},
	{Name: "Pictor", EnglishName: "Easel", Area: 246.739, Quadrant: SQ1, StartLatitude: 26, EndLatitude: 90, Month: 1},
	{Name: "Pisces", EnglishName: "Fishes", Area: 889.417, Quadrant: NQ1, StartLatitude: 90, EndLatitude: 65, Month: 11},
	{Name: "PiscisAustrinus", EnglishName: "Southern Fish", Area: 245.375, Quadrant: SQ4, StartLatitude: 55, EndLatitude: 90, Month: 10},
	{Name: "Puppis", EnglishName: "Stern", Area: 673.434, Quadrant: SQ2, StartLatitude: 40, EndLatitude: 90, Month: 2},
	{Name: "Pyxis", EnglishName: "Compass (mariner’s compass)", Area: 220.833, Quadrant: SQ2, StartLatitude: 50, EndLatitude: 90, Month: 3},
	{Name: "Reticulum", EnglishName: "Reticle", Area: 113.936, Quadrant: SQ1, StartLatitude: 23, EndLatitude: 90, Month: 1},
	{Name: "Sagitta", EnglishName: "Arrow", Area: 79.932, Quadrant: NQ4, StartLatitude: 90, EndLatitude: 70, Month: 8},
	{Name: "Sagittarius", EnglishName: "Archer", Area: 867.432, Quadrant: SQ4, StartLatitude: 55, EndLatitude: 90, Month: 8},
	{Name: "Scorpius", EnglishName: "Scorpion", Area: 496.783, Quadrant: SQ3, StartLatitude: 40, EndLatitude: 90, Month: 7},
	{Name: "Sculptor", EnglishName: "Sculptor", Area: 474.764, Quadrant: SQ1, StartLatitude: 50, EndLatitude: 90, Month: 11},
	{Name: "Scutum", EnglishName: "Shield (of Sobieski)", Area: 109.114, Quadrant: SQ4, StartLatitude: 80, EndLatitude: 90, Month: 8},
	{Name: "Serpens", EnglishName: "Snake", Area: 636.928, Quadrant: NQ3, StartLatitude: 80, EndLatitude: 80, Month: 7},
	{Name: "Sextans", EnglishName: "Sextant", Area: 313.515, Quadrant: SQ2, StartLatitude: 80, EndLatitude: 90, Month: 4},
	{Name: "Taurus", EnglishName: "Bull", Area: 797.249, Quadrant: NQ1, StartLatitude: 90, EndLatitude: 65, Month: 1},
	{Name: "Telescopiu", EnglishName: "Telescope", Area: 251.512, Quadrant: SQ4, StartLatitude: 40, EndLatitude: 90, Month: 8},
	{Name: "Triangulum", EnglishName: "Triangle", Area: 131.847, Quadrant: NQ1, StartLatitude: 90, EndLatitude: 60, Month: 12},
	{Name: "TriangulumAustrale", EnglishName: "Southern Triangle", Area: 109.978, Quadrant: SQ3, StartLatitude: 25, EndLatitude: 90, Month: 7},
	{Name: "Tucana", EnglishName: "Toucan", Area: 294.557, Quadrant: SQ4, StartLatitude: 25, EndLatitude: 90, Month: 11},
	{Name: "UrsaMajor", EnglishName: "Great Bear", Area: 1279.66, Quadrant: NQ2, StartLatitude: 90, EndLatitude: 30, Month: 4},
	{Name: "UrsaMinor", EnglishName: "Little Bear", Area: 255.864, Quadrant: NQ3, StartLatitude: 90, EndLatitude: 10, Month: 6},
	{Name: "Vela", EnglishName: "Sails", Area: 499.649, Quadrant: SQ2, StartLatitude: 30, EndLatitude: 90, Month: 3},
	{Name: "Virgo", EnglishName: "Virgin (Maiden)", Area: 1294.428, Quadrant: SQ3, StartLatitude: 80, EndLatitude: 80, Month: 5},
	{Name: "Volans", EnglishName: "Flying Fish", Area: 141.354, Quadrant: SQ2, StartLatitude: 15, EndLatitude: 90, Month: 3},
	{Name: "Vulpecula", EnglishName: "Fox", Area: 268.165, Quadrant: NQ4, StartLatitude: 90, EndLatitude: 55, Month: 11},
}
