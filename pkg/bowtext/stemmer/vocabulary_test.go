package stemmer

// snowballVocabulary is a sample of the Snowball English reference
// vocabulary and its stems. It covers every step 2, 3 and 4 suffix.
var snowballVocabulary = []struct {
	input string
	want  string
}{
	{"abated", "abat"},
	{"abnormality", "abnorm"},
	{"absurdity", "absurd"},
	{"acclivity", "accliv"},
	{"accompaniments", "accompani"},
	{"accoutrements", "accoutr"},
	{"acknowledgement", "acknowledg"},
	{"acquaintance", "acquaint"},
	{"activity", "activ"},
	{"actuality", "actual"},
	{"acutely", "acut"},
	{"additional", "addit"},
	{"adjustment", "adjust"},
	{"administration", "administr"},
	{"administrator", "administr"},
	{"administrators", "administr"},
	{"admittance", "admitt"},
	{"admonitions", "admonit"},
	{"adornment", "adorn"},
	{"advertiser", "advertis"},
	{"agency", "agenc"},
	{"agility", "agil"},
	{"agreement", "agreement"},
	{"aimlessly", "aimless"},
	{"albuminous", "albumin"},
	{"alluvial", "alluvi"},
	{"alternative", "altern"},
	{"amazement", "amaz"},
	{"amputation", "amput"},
	{"analogy", "analog"},
	{"animated", "anim"},
	{"apology", "apolog"},
	{"apparently", "appar"},
	{"artfully", "art"},
	{"aspirants", "aspir"},
	{"assemblies", "assembl"},
	{"authentically", "authent"},
	{"authenticity", "authent"},
	{"authoritative", "authorit"},
	{"barbarism", "barbar"},
	{"benediction", "benedict"},
	{"bountiful", "bounti"},
	{"briefly", "briefli"},
	{"brightly", "bright"},
	{"briskness", "brisk"},
	{"cannibalism", "cannib"},
	{"captivity", "captiv"},
	{"carelessly", "careless"},
	{"carnivorous", "carnivor"},
	{"characterize", "character"},
	{"civilization", "civil"},
	{"classicality", "classic"},
	{"cognisant", "cognis"},
	{"combative", "combat"},
	{"compatible", "compat"},
	{"competency", "compet"},
	{"compressible", "compress"},
	{"conjugal", "conjug"},
	{"conscientiousness", "conscienti"},
	{"consciousness", "conscious"},
	{"consistent", "consist"},
	{"constancy", "constanc"},
	{"constituencies", "constitu"},
	{"constituency", "constitu"},
	{"constitutional", "constitut"},
	{"continuously", "continu"},
	{"controlling", "control"},
	{"conventional", "convent"},
	{"conventionalities", "convent"},
	{"conventionality", "convent"},
	{"conventionally", "convent"},
	{"conversational", "convers"},
	{"conversationally", "convers"},
	{"conveyance", "convey"},
	{"convulsively", "convuls"},
	{"corroborative", "corrobor"},
	{"countenances", "counten"},
	{"crystallization", "crystal"},
	{"deceitfulness", "deceit"},
	{"decencies", "decenc"},
	{"decently", "decent"},
	{"decisive", "decis"},
	{"decorative", "decor"},
	{"delightfully", "delight"},
	{"delinquency", "delinqu"},
	{"demonstrative", "demonstr"},
	{"demoralize", "demor"},
	{"demoralized", "demor"},
	{"derisively", "deris"},
	{"despotism", "despot"},
	{"determination", "determin"},
	{"diametrically", "diametr"},
	{"diligently", "dilig"},
	{"direfully", "dire"},
	{"discover", "discov"},
	{"discussions", "discuss"},
	{"disinterestedness", "disinterested"},
	{"disorganization", "disorgan"},
	{"domesticated", "domest"},
	{"dreadfully", "dread"},
	{"duplicity", "duplic"},
	{"durability", "durabl"},
	{"eagerly", "eager"},
	{"eccentricity", "eccentr"},
	{"eddication", "eddic"},
	{"educational", "educ"},
	{"effectiveness", "effect"},
	{"efficiency", "effici"},
	{"elephant", "eleph"},
	{"elephants", "eleph"},
	{"eminently", "emin"},
	{"emphatically", "emphat"},
	{"enlistment", "enlist"},
	{"entomology", "entomolog"},
	{"equitably", "equit"},
	{"especially", "especi"},
	{"etymology", "etymolog"},
	{"evasiveness", "evas"},
	{"exceptionally", "except"},
	{"exclusiveness", "exclus"},
	{"exhalations", "exhal"},
	{"exotics", "exot"},
	{"extricated", "extric"},
	{"extrication", "extric"},
	{"ezactly", "ezact"},
	{"faithfulness", "faith"},
	{"fall", "fall"},
	{"fanaticism", "fanatic"},
	{"fastidiousness", "fastidi"},
	{"fatness", "fat"},
	{"favourably", "favour"},
	{"felicity", "felic"},
	{"festivities", "festiv"},
	{"festivity", "festiv"},
	{"flagellator", "flagel"},
	{"forgiveness", "forgiv"},
	{"formality", "formal"},
	{"fraudulently", "fraudul"},
	{"fulfilment", "fulfil"},
	{"fusibility", "fusibl"},
	{"generalization", "general"},
	{"geology", "geolog"},
	{"governessing", "gover"},
	{"gracefully", "grace"},
	{"gunpowder", "gunpowd"},
	{"guttural", "guttur"},
	{"heartlessly", "heartless"},
	{"honourable", "honour"},
	{"honourably", "honour"},
	{"hopefulness", "hope"},
	{"humbly", "humbl"},
	{"idealism", "ideal"},
	{"idolized", "idol"},
	{"imitator", "imit"},
	{"impeachment", "impeach"},
	{"impenetrabilities", "impenetr"},
	{"impetuously", "impetu"},
	{"implication", "implic"},
	{"impudent", "impud"},
	{"impulsive", "impuls"},
	{"inactivity", "inact"},
	{"incitement", "incit"},
	{"incoherence", "incoher"},
	{"inconveniency", "inconveni"},
	{"incrustation", "incrust"},
	{"incumbrance", "incumbr"},
	{"individualism", "individu"},
	{"inefficiency", "ineffici"},
	{"inexpressibly", "inexpress"},
	{"infallibly", "infal"},
	{"infancy", "infanc"},
	{"inflexibility", "inflex"},
	{"informant", "inform"},
	{"inimical", "inim"},
	{"inquisitiveness", "inquisit"},
	{"instructive", "instruct"},
	{"intelligibly", "intellig"},
	{"intemperance", "intemper"},
	{"intentional", "intent"},
	{"international", "intern"},
	{"investigations", "investig"},
	{"irrational", "irrat"},
	{"irresistibly", "irresist"},
	{"irreverently", "irrever"},
	{"irritable", "irrit"},
	{"jupiter", "jupit"},
	{"legibility", "legibl"},
	{"legislator", "legisl"},
	{"liberalism", "liber"},
	{"lieutenancies", "lieuten"},
	{"lucrative", "lucrat"},
	{"magnificence", "magnific"},
	{"majestically", "majest"},
	{"maliciously", "malici"},
	{"mammiferous", "mammifer"},
	{"manfully", "man"},
	{"mechanically", "mechan"},
	{"mediator", "mediat"},
	{"mercilessly", "merciless"},
	{"moralizing", "moral"},
	{"multiplicity", "multipl"},
	{"narrative", "narrat"},
	{"naturalized", "natur"},
	{"negative", "negat"},
	{"negligently", "neglig"},
	{"noiselessly", "noiseless"},
	{"obscenity", "obscen"},
	{"obsequiousness", "obsequi"},
	{"obtainable", "obtain"},
	{"officer", "offic"},
	{"organism", "organ"},
	{"organization", "organ"},
	{"organizations", "organ"},
	{"ornithology", "ornitholog"},
	{"partition", "partit"},
	{"perfectly", "perfect"},
	{"periodical", "period"},
	{"periodically", "period"},
	{"permanently", "perman"},
	{"permissible", "permiss"},
	{"phraseology", "phraseolog"},
	{"physical", "physic"},
	{"physiological", "physiolog"},
	{"piecemeal", "piecem"},
	{"piquancy", "piquanc"},
	{"pitilessly", "pitiless"},
	{"plausibly", "plausibl"},
	{"pleasantly", "pleasant"},
	{"positively", "posit"},
	{"presumably", "presum"},
	{"probabilities", "probabl"},
	{"probably", "probabl"},
	{"prodigal", "prodig"},
	{"prodigality", "prodig"},
	{"prolixity", "prolix"},
	{"properly", "proper"},
	{"proportional", "proport"},
	{"proportionally", "proport"},
	{"provocative", "provoc"},
	{"radiation", "radiat"},
	{"radicalism", "radic"},
	{"radicals", "radic"},
	{"rattle", "rattl"},
	{"refinement", "refin"},
	{"relative", "relat"},
	{"remarkably", "remark"},
	{"repetitions", "repetit"},
	{"representative", "repres"},
	{"republicanism", "republican"},
	{"respectability", "respect"},
	{"resplendently", "resplend"},
	{"retirements", "retir"},
	{"romantically", "romant"},
	{"salubrity", "salubr"},
	{"scrofulous", "scroful"},
	{"scrupulously", "scrupul"},
	{"selfishness", "selfish"},
	{"sensational", "sensat"},
	{"sentimentalism", "sentiment"},
	{"separately", "separ"},
	{"seraphically", "seraph"},
	{"sermonizing", "sermon"},
	{"signalize", "signal"},
	{"simplicity", "simplic"},
	{"sinfulness", "sin"},
	{"singularity", "singular"},
	{"skilfulness", "skil"},
	{"solicitously", "solicit"},
	{"solidness", "solid"},
	{"sonorously", "sonor"},
	{"sorrowfully", "sorrow"},
	{"speciality", "special"},
	{"speculation", "specul"},
	{"sportiveness", "sportiv"},
	{"stationer", "station"},
	{"stratification", "stratif"},
	{"sumptuously", "sumptuous"},
	{"superabundant", "superabund"},
	{"sycophancy", "sycoph"},
	{"symbolism", "symbol"},
	{"sympathized", "sympath"},
	{"sympathizers", "sympath"},
	{"sympathizing", "sympath"},
	{"talkative", "talkat"},
	{"tantalizing", "tantal"},
	{"tediousness", "tedious"},
	{"tentatively", "tentat"},
	{"terminates", "termin"},
	{"thankfulness", "thank"},
	{"thoughtfully", "thought"},
	{"thoughtfulness", "thought"},
	{"traditional", "tradit"},
	{"tranquillize", "tranquil"},
	{"turbulence", "turbul"},
	{"unattainable", "unattain"},
	{"unconstitutional", "unconstitut"},
	{"unconstitutionally", "unconstitut"},
	{"uncritically", "uncrit"},
	{"unequally", "unequ"},
	{"unfaithfulness", "unfaith"},
	{"ungraciously", "ungraci"},
	{"ungrateful", "ungrat"},
	{"unintentional", "unintent"},
	{"unmistakably", "unmistak"},
	{"unproducible", "unproduc"},
	{"unspeakably", "unspeak"},
	{"unusually", "unusu"},
	{"vacancies", "vacanc"},
	{"ventilator", "ventil"},
	{"viciousness", "vicious"},
	{"vituperative", "vitup"},
	{"watchfulness", "watch"},
	{"well", "well"},
	{"zoologically", "zoolog"},
}
