package catalog

// QuirkyTheme selects one of the flavor-text pools used for daily
// broadcast chatter.
type QuirkyTheme string

const (
	ThemeBureaucracy QuirkyTheme = "bureaucracy"
	ThemeBiology     QuirkyTheme = "biology"
	ThemeGlitch      QuirkyTheme = "glitch"
	ThemeRelic       QuirkyTheme = "relic"
	ThemeConspiracy  QuirkyTheme = "conspiracy"
	ThemeChemistry   QuirkyTheme = "chemistry"
	ThemeGeneral     QuirkyTheme = "general"
)

// QuirkyThemes lists every theme in a stable order, for uniform selection.
var QuirkyThemes = []QuirkyTheme{
	ThemeBureaucracy,
	ThemeBiology,
	ThemeGlitch,
	ThemeRelic,
	ThemeConspiracy,
	ThemeChemistry,
	ThemeGeneral,
}

var bureaucracyMessages = []string{
	"The Galactic Trade Commission just mandated a new anti-grav sticker for all exported Zydium.",
	"Sector 7G's triplicate customs forms caused a 48-hour backlog. Demand is spiking.",
	"Your latest shipment of Chrono-Widgets has been flagged for 'Temporal Irregularity.' Expect delays.",
	"Auditors found one credit misplaced in 2077. The planet's economy is now frozen.",
	"New regulation: All cargo pilots must wear hats. Hat prices surge.",
	"The Dept of Redundancy Dept issued a new form for filling out forms.",
	"Tariffs on 'Things that beep' have tripled due to noise complaints.",
	"Customs officers are on strike. They demand better coffee.",
	"A typo in the tax code just made 'Zero' equal to 'One Million'. Chaos ensues.",
	"License renewal Required: 'Breathing License Class C'.",
	"Bureaucratic Error 404: Economy not found.",
	"Mandatory safety briefing regarding the dangers of paper cuts.",
	"The Emperor's signature stamp was stolen. No laws can be passed today.",
	"Tax Season extended by 6 light years.",
	"The Interstellar Zoning Board rezoned this trade lane as a 'Quiet Zone'.",
}

var biologyMessages = []string{
	"The Vlorp Queen sneezed, creating a rush for tissues woven from Nebula Silk.",
	"Market panic: It turns out 'Glarb Oil' is highly addictive to space slugs. Buy low!",
	"A newly discovered species uses common rust as a gourmet spice. Scraps just became gold.",
	"Local stock of 'Antimatter Custard' plummeted after a food critic called it 'too beige.'",
	"Space Whales are migrating. Plankton futures are up.",
	"Warning: Do not pet the fuzzy cargo. It bites.",
	"The slime mold in Sector 4 has achieved sentience and is day-trading.",
	"Alien flu outbreak. Symptoms include turning plaid.",
	"Demand for salt licks increases as the rock-people population booms.",
	"A plant that eats money was found in the cargo hold.",
	"New species discovered: It looks like a potato but screams when peeled.",
	"The Zognoid ambassador is allergic to the color blue. Market adjusting.",
	"Bio-hazard: Someone left a sandwich in the airlock for 3 years.",
	"The sentient moss on Beta-9 is demanding voting rights.",
	"Rare bacteria found that turns lead into slightly heavier lead.",
}

var glitchMessages = []string{
	"The market AI, 'HAL-9001,' decided today is Opposite Day. All sell orders are now buy orders.",
	"A massive teleportation accident swapped all Hyper-Batteries with sentient doorstops.",
	"The automated freighter fleet got distracted by a shiny asteroid. Supply delayed.",
	"The universal calculator rounded down too aggressively. We just got 10% more rich!",
	"Error: Market prices displayed in binary. 01000110!",
	"The navigation buoy is broadcasting disco music. Traffic jammed.",
	"Gravity generator glitch: Everything is now slightly to the left.",
	"The trading algorithm developed a crush on a toaster.",
	"System Update 98% complete... for the last 4 days.",
	"Data corruption: All cargo manifests now read 'Banana'.",
	"The holographic clerks are flickering. Seizure warning.",
	"Time-loop detected. Time-loop detected. Time-loop detected.",
	"The comms array is picking up soap operas from 1985.",
	"Firewall breach. The hackers only stole the virtual cookies.",
	"Robot uprising cancelled due to low battery.",
}

var relicMessages = []string{
	"The original 21st-century 'meme stock' investor guide just resurfaced. Market volatility expected.",
	"Trade routes are jammed. Everyone is buying 'Vintage Oxygen' canisters from the third planet.",
	"Demand for 'rubber ducks' has inexplicably gone intergalactic. Time to corner the market.",
	"Fashion trends on Xylar-4 now require neon pink socks. The textile market is exploding.",
	"Archaeologists found a 'Fidget Spinner'. Cults are forming.",
	"A 'Floppy Disk' sold for 1 million credits.",
	"Ancient Earth Artifact 'Nokia 3310' found intact. Used as ship armor.",
	"Collectors paying top dollar for 'Beanie Babies'.",
	"A VHS tape of 'Cats' is being used as a torture device.",
	"The 'Internet' is rumored to be a physical place. Explorers dispatched.",
	"Vintage 'Hoodie' found. Tech CEOs bidding war.",
	"A 'Tamagotchi' survived 1000 years. It still needs feeding.",
	"Plastic straws are now the galaxy's rarest currency.",
	"An ancient 'Meme' has gone viral again.",
	"Twinkies found. Still edible.",
}

var conspiracyMessages = []string{
	"A reputable source claims all Space-Widgets are hollowed-out containers for spy drones.",
	"They say the price of Iron is tied directly to the emotional state of the Galactic Emperor's cat.",
	"It's not a glitch, it's a feature! The markets are controlled by a shadowy cabal of space squirrels.",
	"The 'Void Diamonds' are actually just compressed space lint. Don't tell anyone.",
	"Birds aren't real. Neither are spaceships.",
	"The moon landing was faked. Which moon? All of them.",
	"Hyperspace is just a loading screen.",
	"The stars are actually giant LEDs.",
	"Oxygen is a hallucinogen. Wake up, sheeple!",
	"The government is putting chemicals in the fuel to make the ships gay.",
	"Area 52 is just a distraction from Area 53.",
	"The universe is a simulation running on Windows 95.",
	"Time travel exists, but it's expensive.",
	"The Lizard People run the banks. Literally, they are lizards.",
	"Red ones don't actually go faster.",
}

var chemistryMessages = []string{
	"H2O + CO2 + Sunlight -> Glucose + O2. Photosynthesis units operational.",
	"Warning: CH4 levels critical in Crew Quarters. Stop feeding the pilot beans.",
	"NaCl prices stable. Don't get salty.",
	"C8H10N4O2: The formula for caffeine. Pilot morale improving.",
	"Au (Gold) is conductive, but trading it is electrifying.",
	"He (Helium) shortage. Communications voices pitch increasing.",
	"Fe2O3 detected on hull. Rust never sleeps.",
	"C2H5OH supply critical. The space-bar is running dry.",
	"Ag (Silver) lining found in the nebula cloud.",
	"U235 stock glowing. Geiger counters clicking rhythmically.",
	"O3 layer depletion on Planet X. Sunscreen prices rising.",
	"CO (Carbon Monoxide) leak? I feel sleepy...",
	"Pb (Lead) shielding holding. Radiation nominal.",
	"NH3 (Ammonia) scrubbers requiring maintenance.",
	"H2SO4 rain predicted. Hull polish ruined.",
	"SiO2 (Sand) detected in gears. It's coarse and gets everywhere.",
	"Titanium alloy mix incorrect. Structural integrity questionable.",
	"Antimatter containment magnetic field stable. No boom today.",
	"Dark Matter isn't just a theory, it's sticky.",
	"Zero-G chemistry experiment created a sentient blob.",
}

var generalSciFiMessages = []string{
	"Don't panic.",
	"I've got a bad feeling about this.",
	"Beam me up.",
	"The truth is out there.",
	"In space, no one can hear you scream.",
	"Resistance is futile.",
	"Make it so.",
	"These are not the droids you are looking for.",
	"Live long and prosper.",
	"So long, and thanks for all the fish.",
	"It's a trap!",
	"I am your father's brother's nephew's cousin's former roommate.",
	"Open the pod bay doors, please.",
	"Set phasers to stun.",
	"To infinity and beyond!",
}

// QuirkyMessages maps each theme to its message pool.
var QuirkyMessages = map[QuirkyTheme][]string{
	ThemeBureaucracy: bureaucracyMessages,
	ThemeBiology:     biologyMessages,
	ThemeGlitch:      glitchMessages,
	ThemeRelic:       relicMessages,
	ThemeConspiracy:  conspiracyMessages,
	ThemeChemistry:   chemistryMessages,
	ThemeGeneral:     generalSciFiMessages,
}
