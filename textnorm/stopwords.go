package textnorm

// generalStopWords is the common Russian stop-word list (particles, pronouns,
// prepositions and similar function words).
var generalStopWords = []string{
	"и", "в", "во", "не", "что", "он", "на", "я", "с", "со", "как", "а", "то",
	"все", "она", "так", "его", "но", "да", "ты", "к", "у", "же", "вы", "за",
	"бы", "по", "только", "ее", "мне", "было", "вот", "от", "меня", "еще",
	"нет", "о", "из", "ему", "теперь", "когда", "даже", "ну", "вдруг", "ли",
	"если", "уже", "или", "ни", "быть", "был", "него", "до", "вас", "нибудь",
	"опять", "уж", "вам", "ведь", "там", "потом", "себя", "ничего", "ей",
	"может", "они", "тут", "где", "есть", "надо", "ней", "для", "мы", "тебя",
	"их", "чем", "была", "сам", "чтоб", "без", "будто", "чего", "раз", "тоже",
	"себе", "под", "будет", "ж", "тогда", "кто", "этот", "того", "потому",
	"этого", "какой", "совсем", "ним", "здесь", "этом", "один", "почти",
	"мой", "тем", "чтобы", "нее", "сейчас", "были", "куда", "зачем", "всех",
	"никогда", "можно", "при", "наконец", "два", "об", "другой", "хоть",
	"после", "над", "больше", "тот", "через", "эти", "нас", "про", "всего",
	"них", "какая", "много", "разве", "три", "эту", "моя", "впрочем",
	"хорошо", "свою", "этой", "перед", "иногда", "лучше", "чуть", "том",
	"нельзя", "такой", "им", "более", "всегда", "конечно", "всю", "между",
}

// domainStopWords is the curated list of words that carry no matching signal
// in self-descriptions: greetings, filler, and the near-universal hobby
// vocabulary that would otherwise glue every profile to every other profile.
var domainStopWords = []string{
	"привет", "меня", "звать", "здравствуйте", "приветик", "здарова", "хай",
	"это", "вот", "ну", "да", "нет", "так", "еще", "уже", "просто", "очень",
	"свой", "моя", "мой", "мое", "работаю", "работать", "своя", "свои", "своей",
	"свою", "своих", "который", "которая", "которые", "которым", "которыми",
	"любить", "нравится", "хотеть", "уметь", "слушать", "искать", "заниматься",
	"смотреть", "обожать", "девушка", "парень", "человек", "фильм", "музыка",
	"здорово", "фанат", "работа", "жизнь", "реалистичный",
	"мужчина", "увлекаться", "любимый", "изучать", "хобби", "женщина",
	"мечтать", "весь", "создавать", "коллекционировать", "специалист", "время",
	"помогать", "сериал", "создание", "классический", "система", "свободный", "умный",
	"звук", "городской", "ценить", "искусство", "история", "исторический", "оценить",
	"разрабатывать", "старинный", "ребёнок", "редкий", "разный", "музей",
	"мастер", "древний", "традиционный", "возвращать", "красота", "встреча",
	"коллекционирование", "изучение", "год",
}
