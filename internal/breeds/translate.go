package breeds

import (
	"regexp"
	"strings"
)

// TemperamentUnavailable is the sentinel served when an upstream record has
// no temperament data.
const TemperamentUnavailable = "Temperamento não disponível"

// temperamentTranslations maps English temperament terms to pt-BR. The table
// is ordered: multi-word phrases come before the words they contain (e.g.
// "eager to please" before "eager") so phrase matches win. The upstream data
// this was built from defined a few keys twice; those were deduplicated with
// last-write-wins semantics, which is why "watchful" reads "atento" rather
// than "vigilante".
var temperamentTranslations = []translation{
	{"active", "ativo"},
	{"energetic", "energético"},
	{"playful", "brincalhão"},
	{"calm", "calmo"},
	{"docile", "dócil"},
	{"gentle", "gentil"},
	{"alert", "alerta"},
	{"intelligent", "inteligente"},
	{"friendly", "amigável"},
	{"independent", "independente"},
	{"aloof", "distante"},
	{"loyal", "leal"},
	{"affectionate", "carinhoso"},
	{"protective", "protetor"},
	{"confident", "confiante"},
	{"outgoing", "sociável"},
	{"reserved", "reservado"},
	{"patient", "paciente"},
	{"curious", "curioso"},
	{"adaptable", "adaptável"},
	{"social", "social"},
	{"quiet", "quieto"},
	{"vocal", "vocal"},
	{"sweet", "doce"},
	{"loving", "amoroso"},
	{"devoted", "devotado"},
	{"brave", "corajoso"},
	{"bold", "audacioso"},
	{"fearless", "destemido"},
	{"timid", "tímido"},
	{"shy", "tímido"},
	{"aggressive", "agressivo"},
	{"territorial", "territorial"},
	{"dominant", "dominante"},
	{"submissive", "submisso"},
	{"stubborn", "teimoso"},
	{"obedient", "obediente"},
	{"trainable", "treinável"},
	{"eager to please", "ansioso para agradar"},
	{"responsive", "responsivo"},
	{"sensitive", "sensível"},
	{"hardy", "resistente"},
	{"robust", "robusto"},
	{"delicate", "delicado"},
	{"graceful", "gracioso"},
	{"elegant", "elegante"},
	{"athletic", "atlético"},
	{"agile", "ágil"},
	{"strong", "forte"},
	{"powerful", "poderoso"},
	{"muscular", "musculoso"},
	{"compact", "compacto"},
	{"sturdy", "robusto"},
	{"balanced", "equilibrado"},
	{"even-tempered", "temperamento equilibrado"},
	{"good-natured", "bem-humorado"},
	{"cheerful", "alegre"},
	{"happy", "feliz"},
	{"joyful", "alegre"},
	{"lively", "vivaz"},
	{"spirited", "espirituoso"},
	{"enthusiastic", "entusiasmado"},
	{"eager", "ansioso"},
	{"keen", "perspicaz"},
	{"watchful", "atento"},
	{"attentive", "atento"},
	{"focused", "focado"},
	{"determined", "determinado"},
	{"persistent", "persistente"},
	{"tenacious", "tenaz"},
	{"willful", "voluntarioso"},
	{"headstrong", "teimoso"},
	{"mischievous", "travesso"},
	{"fun-loving", "divertido"},
	{"entertaining", "divertido"},
	{"amusing", "divertido"},
	{"clownish", "palhaço"},
	{"comical", "cômico"},
	{"dignified", "digno"},
	{"noble", "nobre"},
	{"regal", "real"},
	{"majestic", "majestoso"},
	{"proud", "orgulhoso"},
	{"self-assured", "autoconfiante"},
	{"composed", "composto"},
	{"serene", "sereno"},
	{"tranquil", "tranquilo"},
	{"peaceful", "pacífico"},
	{"relaxed", "relaxado"},
	{"laid-back", "descontraído"},
	{"easy-going", "tranquilo"},
	{"flexible", "flexível"},
	{"versatile", "versátil"},
	{"resilient", "resiliente"},
	{"stable", "estável"},
	{"reliable", "confiável"},
	{"consistent", "consistente"},
	{"predictable", "previsível"},
	{"steady", "estável"},
	{"dependable", "confiável"},
	{"trustworthy", "confiável"},
	{"honest", "honesto"},
	{"sincere", "sincero"},
	{"genuine", "genuíno"},
	{"authentic", "autêntico"},
	{"natural", "natural"},
	{"spontaneous", "espontâneo"},
	{"impulsive", "impulsivo"},
	{"excitable", "excitável"},
	{"hyperactive", "hiperativo"},
	{"restless", "inquieto"},
	{"fidgety", "agitado"},
	{"nervous", "nervoso"},
	{"anxious", "ansioso"},
	{"worried", "preocupado"},
	{"fearful", "medroso"},
	{"cautious", "cauteloso"},
	{"careful", "cuidadoso"},
	{"prudent", "prudente"},
	{"wise", "sábio"},
	{"clever", "esperto"},
	{"smart", "inteligente"},
	{"bright", "brilhante"},
	{"quick", "rápido"},
	{"sharp", "perspicaz"},
	{"witty", "espirituoso"},
	{"charming", "charmoso"},
	{"appealing", "atraente"},
	{"endearing", "cativante"},
	{"adorable", "adorável"},
	{"cute", "fofo"},
	{"beautiful", "bonito"},
	{"handsome", "bonito"},
	{"attractive", "atraente"},
	{"striking", "impressionante"},
	{"distinctive", "distintivo"},
	{"unique", "único"},
	{"special", "especial"},
	{"extraordinary", "extraordinário"},
	{"remarkable", "notável"},
	{"outstanding", "excepcional"},
	{"excellent", "excelente"},
	{"superior", "superior"},
	{"exceptional", "excepcional"},
	{"rare", "raro"},
	{"uncommon", "incomum"},
	{"unusual", "incomum"},
	{"exotic", "exótico"},
	{"foreign", "estrangeiro"},
	{"domestic", "doméstico"},
	{"wild", "selvagem"},
	{"feral", "selvagem"},
	{"primitive", "primitivo"},
	{"ancient", "antigo"},
	{"old", "velho"},
	{"mature", "maduro"},
	{"adult", "adulto"},
	{"young", "jovem"},
	{"youthful", "jovem"},
	{"puppy-like", "como filhote"},
	{"kitten-like", "como filhote"},
	{"childish", "infantil"},
	{"immature", "imaturo"},
	{"naive", "ingênuo"},
	{"innocent", "inocente"},
	{"pure", "puro"},
	{"clean", "limpo"},
	{"healthy", "saudável"},
	{"fit", "em forma"},
	{"strong-willed", "determinado"},
	{"mild-mannered", "de temperamento suave"},
	{"well-behaved", "bem comportado"},
	{"polite", "educado"},
	{"courteous", "cortês"},
	{"respectful", "respeitoso"},
	{"considerate", "atencioso"},
	{"thoughtful", "pensativo"},
	{"caring", "cuidadoso"},
	{"nurturing", "protetor"},
	{"maternal", "maternal"},
	{"paternal", "paternal"},
	{"family-oriented", "orientado para família"},
	{"child-friendly", "amigo das crianças"},
	{"good with children", "bom com crianças"},
	{"good with kids", "bom com crianças"},
	{"tolerant", "tolerante"},
	{"forgiving", "perdoador"},
	{"understanding", "compreensivo"},
	{"empathetic", "empático"},
	{"compassionate", "compassivo"},
	{"kind", "gentil"},
	{"benevolent", "benevolente"},
	{"generous", "generoso"},
	{"giving", "generoso"},
	{"selfless", "altruísta"},
	{"unselfish", "altruísta"},
	{"helpful", "prestativo"},
	{"cooperative", "cooperativo"},
	{"collaborative", "colaborativo"},
	{"team-oriented", "orientado para equipe"},
	{"sociable", "sociável"},
	{"gregarious", "gregário"},
	{"extroverted", "extrovertido"},
	{"introverted", "introvertido"},
	{"solitary", "solitário"},
	{"loner", "solitário"},
	{"reclusive", "recluso"},
	{"withdrawn", "retraído"},
	{"secretive", "reservado"},
	{"mysterious", "misterioso"},
	{"enigmatic", "enigmático"},
	{"complex", "complexo"},
	{"complicated", "complicado"},
	{"simple", "simples"},
	{"straightforward", "direto"},
	{"direct", "direto"},
	{"blunt", "direto"},
	{"frank", "franco"},
	{"open", "aberto"},
	{"transparent", "transparente"},
	{"clear", "claro"},
	{"obvious", "óbvio"},
	{"evident", "evidente"},
	{"apparent", "aparente"},
	{"visible", "visível"},
	{"noticeable", "perceptível"},
	{"prominent", "proeminente"},
	{"conspicuous", "conspícuo"},
	{"daring", "ousado"},
	{"adventurous", "aventureiro"},
	{"exploratory", "explorador"},
	{"inquisitive", "curioso"},
	{"investigative", "investigativo"},
	{"analytical", "analítico"},
	{"logical", "lógico"},
	{"rational", "racional"},
	{"reasonable", "razoável"},
	{"sensible", "sensato"},
	{"practical", "prático"},
	{"realistic", "realista"},
	{"pragmatic", "pragmático"},
	{"down-to-earth", "pé no chão"},
	{"grounded", "centrado"},
	{"solid", "sólido"},
	{"firm", "firme"},
	{"tough", "resistente"},
	{"enduring", "duradouro"},
	{"lasting", "duradouro"},
	{"permanent", "permanente"},
	{"constant", "constante"},
	{"continuous", "contínuo"},
	{"ongoing", "contínuo"},
	{"sustained", "sustentado"},
	{"maintained", "mantido"},
	{"preserved", "preservado"},
	{"protected", "protegido"},
	{"safe", "seguro"},
	{"secure", "seguro"},
	{"comfortable", "confortável"},
	{"at ease", "à vontade"},
	{"content", "contente"},
	{"satisfied", "satisfeito"},
	{"pleased", "satisfeito"},
	{"delighted", "encantado"},
	{"thrilled", "emocionado"},
	{"excited", "animado"},
	{"passionate", "apaixonado"},
	{"intense", "intenso"},
	{"fervent", "fervoroso"},
	{"zealous", "zeloso"},
	{"dedicated", "dedicado"},
	{"committed", "comprometido"},
	{"faithful", "fiel"},
	{"true", "verdadeiro"},
	{"real", "real"},
	{"original", "original"},
	{"one-of-a-kind", "único"},
	{"characteristic", "característico"},
	{"typical", "típico"},
	{"representative", "representativo"},
	{"classic", "clássico"},
	{"traditional", "tradicional"},
	{"conventional", "convencional"},
	{"standard", "padrão"},
	{"normal", "normal"},
	{"regular", "regular"},
	{"ordinary", "comum"},
	{"common", "comum"},
	{"usual", "usual"},
	{"familiar", "familiar"},
	{"known", "conhecido"},
	{"recognized", "reconhecido"},
	{"established", "estabelecido"},
	{"accepted", "aceito"},
	{"approved", "aprovado"},
	{"endorsed", "endossado"},
	{"recommended", "recomendado"},
	{"suggested", "sugerido"},
	{"proposed", "proposto"},
	{"offered", "oferecido"},
	{"presented", "apresentado"},
	{"shown", "mostrado"},
	{"displayed", "exibido"},
	{"exhibited", "exibido"},
	{"demonstrated", "demonstrado"},
	{"proven", "provado"},
	{"tested", "testado"},
	{"tried", "testado"},
	{"experienced", "experiente"},
	{"seasoned", "experiente"},
	{"veteran", "veterano"},
	{"skilled", "habilidoso"},
	{"talented", "talentoso"},
	{"gifted", "talentoso"},
	{"capable", "capaz"},
	{"able", "capaz"},
	{"competent", "competente"},
	{"qualified", "qualificado"},
	{"certified", "certificado"},
	{"licensed", "licenciado"},
	{"authorized", "autorizado"},
	{"permitted", "permitido"},
	{"allowed", "permitido"},
	{"sanctioned", "sancionado"},
	{"supported", "apoiado"},
	{"backed", "apoiado"},
	{"sponsored", "patrocinado"},
	{"funded", "financiado"},
	{"financed", "financiado"},
	{"paid", "pago"},
	{"compensated", "compensado"},
	{"rewarded", "recompensado"},
	{"acknowledged", "reconhecido"},
	{"appreciated", "apreciado"},
	{"valued", "valorizado"},
	{"treasured", "valorizado"},
	{"cherished", "querido"},
	{"beloved", "amado"},
	{"adored", "adorado"},
	{"worshipped", "adorado"},
	{"revered", "reverenciado"},
	{"respected", "respeitado"},
	{"honored", "honrado"},
	{"esteemed", "estimado"},
	{"regarded", "considerado"},
	{"viewed", "visto"},
	{"seen", "visto"},
	{"observed", "observado"},
	{"noticed", "notado"},
	{"spotted", "avistado"},
	{"detected", "detectado"},
	{"discovered", "descoberto"},
	{"found", "encontrado"},
	{"located", "localizado"},
	{"identified", "identificado"},
	{"distinguished", "distinguido"},
	{"differentiated", "diferenciado"},
	{"separated", "separado"},
	{"divided", "dividido"},
	{"split", "dividido"},
	{"broken", "quebrado"},
	{"damaged", "danificado"},
	{"harmed", "prejudicado"},
	{"hurt", "machucado"},
	{"injured", "ferido"},
	{"wounded", "ferido"},
	{"bleeding", "sangrando"},
	{"bruised", "machucado"},
	{"scarred", "cicatrizado"},
	{"marked", "marcado"},
	{"stained", "manchado"},
	{"dirty", "sujo"},
	{"fresh", "fresco"},
	{"new", "novo"},
	{"recent", "recente"},
	{"current", "atual"},
	{"present", "presente"},
	{"existing", "existente"},
	{"available", "disponível"},
	{"accessible", "acessível"},
	{"reachable", "alcançável"},
	{"attainable", "atingível"},
	{"achievable", "realizável"},
	{"possible", "possível"},
	{"feasible", "viável"},
	{"brilliant", "brilhante"},
	{"genius", "genial"},
	{"expert", "especialista"},
	{"professional", "profissional"},
	{"trained", "treinado"},
	{"educated", "educado"},
	{"learned", "erudito"},
	{"knowledgeable", "conhecedor"},
	{"informed", "informado"},
	{"aware", "consciente"},
	{"conscious", "consciente"},
	{"awake", "desperto"},
	{"vigilant", "vigilante"},
	{"observant", "observador"},
	{"perceptive", "perceptivo"},
	{"insightful", "perspicaz"},
	{"intuitive", "intuitivo"},
	{"instinctive", "instintivo"},
	{"innate", "inato"},
	{"inherent", "inerente"},
	{"built-in", "incorporado"},
	{"embedded", "incorporado"},
	{"integrated", "integrado"},
	{"combined", "combinado"},
	{"mixed", "misturado"},
	{"blended", "misturado"},
	{"merged", "fundido"},
	{"united", "unido"},
	{"joined", "unido"},
	{"connected", "conectado"},
	{"linked", "ligado"},
	{"attached", "anexado"},
	{"bonded", "ligado"},
	{"tied", "amarrado"},
	{"bound", "ligado"},
	{"secured", "seguro"},
	{"fastened", "preso"},
	{"fixed", "fixo"},
	{"mighty", "poderoso"},
	{"forceful", "forte"},
	{"vigorous", "vigoroso"},
	{"dynamic", "dinâmico"},
	{"animated", "animado"},
	{"vivacious", "vivaz"},
	{"bubbly", "efervescente"},
	{"effervescent", "efervescente"},
	{"sparkling", "brilhante"},
	{"glittering", "brilhante"},
	{"shining", "brilhante"},
	{"radiant", "radiante"},
	{"glowing", "brilhante"},
	{"luminous", "luminoso"},
	{"dazzling", "deslumbrante"},
	{"stunning", "impressionante"},
	{"amazing", "incrível"},
	{"incredible", "incrível"},
	{"unbelievable", "inacreditável"},
	{"fantastic", "fantástico"},
	{"wonderful", "maravilhoso"},
	{"marvelous", "maravilhoso"},
	{"phenomenal", "fenomenal"},
	{"spectacular", "espetacular"},
	{"magnificent", "magnífico"},
	{"splendid", "esplêndido"},
	{"superb", "soberbo"},
	{"supreme", "supremo"},
	{"ultimate", "último"},
	{"perfect", "perfeito"},
	{"flawless", "impecável"},
	{"ideal", "ideal"},
	{"model", "modelo"},
	{"exemplary", "exemplar"},
}

type translation struct {
	en string
	pt string
}

var (
	exactTranslations   map[string]string
	keywordReplacements []keywordReplacement
)

type keywordReplacement struct {
	en string
	re *regexp.Regexp
	pt string
}

func init() {
	exactTranslations = make(map[string]string, len(temperamentTranslations))
	keywordReplacements = make([]keywordReplacement, 0, len(temperamentTranslations))
	for _, t := range temperamentTranslations {
		exactTranslations[t.en] = t.pt
		keywordReplacements = append(keywordReplacements, keywordReplacement{
			en: t.en,
			re: regexp.MustCompile(`(?i)` + regexp.QuoteMeta(t.en)),
			pt: t.pt,
		})
	}
}

// TranslateTemperament translates a comma- or semicolon-separated English
// temperament description to pt-BR. Each part is looked up whole first; if
// that fails, known keywords inside the part are replaced and anything
// unmapped passes through unchanged.
func TranslateTemperament(temperament string) string {
	if temperament == "" || temperament == TemperamentUnavailable {
		return TemperamentUnavailable
	}

	parts := strings.FieldsFunc(temperament, func(r rune) bool {
		return r == ',' || r == ';'
	})

	translated := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lower := strings.ToLower(part)

		if exact, ok := exactTranslations[lower]; ok {
			translated = append(translated, exact)
			continue
		}

		out := part
		for _, kr := range keywordReplacements {
			if strings.Contains(lower, kr.en) {
				out = kr.re.ReplaceAllString(out, kr.pt)
			}
		}
		translated = append(translated, out)
	}

	return strings.Join(translated, ", ")
}
