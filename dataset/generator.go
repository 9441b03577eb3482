package dataset

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"gostformatter/classification"
	"gostformatter/normalization"
)

// DefaultDistribution — целевая раскладка корпуса по типам записей,
// повторяющая пропорции реальных примеров vak.gov.by.
var DefaultDistribution = map[classification.Category]int{
	classification.Law:                180,
	classification.BookFewAuthors:     160,
	classification.JournalArticle:     120,
	classification.CollectionArticle:  80,
	classification.BookManyAuthors:    70,
	classification.Standard:           60,
	classification.Conference:         50,
	classification.Multimedia:         50,
	classification.Patent:             40,
	classification.Dissertation:       30,
	classification.ElectronicResource: 30,
	classification.NewspaperArticle:   30,
	classification.Preprint:           20,
	classification.Map:                20,
	classification.MusicScore:         20,
	classification.VisualMaterial:     20,
	classification.Archive:            20,
	classification.ResearchReport:     15,
	classification.Deposited:          15,
	classification.Multivolume:        15,
	classification.Abstract:           15,
	classification.Review:             15,
	classification.Catalog:            10,
	classification.MethodicalGuide:    15,
}

// generationOrder фиксирует порядок обхода категорий, чтобы корпус
// с одним и тем же зерном собирался одинаково.
var generationOrder = []classification.Category{
	classification.Law, classification.BookFewAuthors, classification.JournalArticle,
	classification.CollectionArticle, classification.BookManyAuthors, classification.Standard,
	classification.Conference, classification.Multimedia, classification.Patent,
	classification.Dissertation, classification.ElectronicResource, classification.NewspaperArticle,
	classification.Preprint, classification.Map, classification.MusicScore,
	classification.VisualMaterial, classification.Archive, classification.ResearchReport,
	classification.Deposited, classification.Multivolume, classification.Abstract,
	classification.Review, classification.Catalog, classification.MethodicalGuide,
}

// Generator собирает синтетические библиографические записи по
// формулам оформления ВАК. Одно зерно даёт один и тот же корпус.
type Generator struct {
	faker *gofakeit.Faker
}

// NewGenerator создает генератор с заданным зерном.
func NewGenerator(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(int64(seed))}
}

// Generate собирает корпус по заданной раскладке. Каждая запись
// проходит нормализацию пунктуации перед попаданием в корпус.
func (g *Generator) Generate(distribution map[classification.Category]int) Corpus {
	if distribution == nil {
		distribution = DefaultDistribution
	}

	var examples []Record
	finalDistribution := make(map[classification.Category]int)

	for _, cat := range generationOrder {
		count := distribution[cat]
		for i := 0; i < count; i++ {
			text, err := g.Example(cat)
			if err != nil {
				continue
			}
			examples = append(examples, Record{Type: cat, Example: text})
			finalDistribution[cat]++
		}
	}

	g.faker.ShuffleAnySlice(examples)

	return Corpus{
		Description:      "Корпус примеров библиографического оформления ВАК РБ",
		Source:           "Синтез по паттернам vak.gov.by",
		GeneratedAt:      time.Now().Format("2006-01-02"),
		TotalExamples:    len(examples),
		TypeDistribution: finalDistribution,
		Examples:         examples,
	}
}

// Example собирает одну запись заданной категории.
func (g *Generator) Example(cat classification.Category) (string, error) {
	var text string
	switch cat {
	case classification.BookFewAuthors:
		text = g.book13()
	case classification.BookManyAuthors:
		text = g.book4plus()
	case classification.JournalArticle:
		text = g.journalArticle()
	case classification.CollectionArticle:
		text = g.collectionArticle()
	case classification.Law:
		text = g.law()
	case classification.Standard:
		text = g.standard()
	case classification.Patent:
		text = g.patent()
	case classification.Dissertation:
		text = g.dissertation()
	case classification.Abstract:
		text = g.abstract()
	case classification.Conference:
		text = g.conference()
	case classification.ElectronicResource:
		text = g.electronicResource()
	case classification.NewspaperArticle:
		text = g.newspaperArticle()
	case classification.Preprint:
		text = g.preprint()
	case classification.Multimedia:
		text = g.multimedia()
	case classification.Map:
		text = g.mapSheet()
	case classification.MusicScore:
		text = g.musicScore()
	case classification.VisualMaterial:
		text = g.visualMaterial()
	case classification.Archive:
		text = g.archive()
	case classification.ResearchReport:
		text = g.researchReport()
	case classification.Deposited:
		text = g.deposited()
	case classification.Multivolume:
		text = g.multivolume()
	case classification.Review:
		text = g.review()
	case classification.Catalog:
		text = g.catalog()
	case classification.MethodicalGuide:
		text = g.methodicalGuide()
	default:
		return "", fmt.Errorf("нет генератора для категории %q", cat)
	}
	return normalization.Normalize(text), nil
}

func (g *Generator) pick(items []string) string {
	return items[g.faker.Number(0, len(items)-1)]
}

// author возвращает фамилию и инициалы; примерно треть авторов
// белорусские.
func (g *Generator) author() (string, string) {
	surname := g.pick(surnamesRU)
	if g.faker.Number(1, 10) > 7 {
		surname = g.pick(surnamesBY)
	}
	return surname, g.pick(initials)
}

func (g *Generator) year() int {
	return g.faker.Number(2015, 2025)
}

func (g *Generator) pageRange(maxStart int) string {
	start := g.faker.Number(5, maxStart)
	return fmt.Sprintf("%d–%d", start, start+g.faker.Number(3, 50))
}

func (g *Generator) date() string {
	return fmt.Sprintf("%d %s %d г.", g.faker.Number(1, 28), g.pick(monthsGenitive), g.year())
}

func (g *Generator) dateShort() string {
	return fmt.Sprintf("%02d.%02d.%d", g.faker.Number(1, 28), g.faker.Number(1, 12), g.year())
}

func (g *Generator) book13() string {
	numAuthors := g.faker.Number(1, 3)
	type person struct{ surname, initials string }
	authors := make([]person, numAuthors)
	for i := range authors {
		authors[i].surname, authors[i].initials = g.author()
	}

	first := fmt.Sprintf("%s, %s", authors[0].surname, authors[0].initials)
	title := g.pick(bookTitles)
	pubType := g.pick([]string{"учеб. пособие", "учеб.-метод. пособие", "монография", "практикум", ""})

	direct := ""
	for i, a := range authors {
		if i > 0 {
			direct += ", "
		}
		direct += a.initials + " " + a.surname
	}

	city := g.pick(citiesBelarus)
	publisher := g.pick(publishersBelarus)

	if pubType != "" {
		return fmt.Sprintf("%s %s : %s / %s. – %s : %s, %d. – %d с.",
			first, title, pubType, direct, city, publisher, g.year(), g.faker.Number(50, 600))
	}
	return fmt.Sprintf("%s %s / %s. – %s : %s, %d. – %d с.",
		first, title, direct, city, publisher, g.year(), g.faker.Number(50, 600))
}

func (g *Generator) book4plus() string {
	surname, ini := g.author()
	return fmt.Sprintf("%s / %s %s [и др.]. – %s : %s, %d. – %d с.",
		g.pick(bookTitles), ini, surname, g.pick(citiesBelarus), g.pick(publishersBelarus),
		g.year(), g.faker.Number(50, 600))
}

func (g *Generator) journalArticle() string {
	surname, ini := g.author()
	first := fmt.Sprintf("%s, %s", surname, ini)
	direct := fmt.Sprintf("%s %s", ini, surname)

	if g.faker.Bool() {
		return fmt.Sprintf("%s %s / %s // %s. – %d. – Т. %d, № %d. – С. %s.",
			first, g.pick(articleTitles), direct, g.pick(journals), g.year(),
			g.faker.Number(1, 30), g.faker.Number(1, 12), g.pageRange(180))
	}
	return fmt.Sprintf("%s %s / %s // %s. – %d. – № %d. – С. %s.",
		first, g.pick(articleTitles), direct, g.pick(journals), g.year(),
		g.faker.Number(1, 12), g.pageRange(180))
}

func (g *Generator) collectionArticle() string {
	surname, ini := g.author()
	collection := g.pick([]string{"Актуальные проблемы", "Современные вопросы", "Научные труды"}) +
		" " + g.pick([]string{"науки", "экономики", "права", "образования"})
	return fmt.Sprintf("%s, %s %s / %s %s // %s : сб. науч. ст. / %s. – %s, %d. – С. %s.",
		surname, ini, g.pick(articleTitles), ini, surname, collection,
		g.pick(organizations), g.pick(citiesBelarus), g.year(), g.pageRange(250))
}

func (g *Generator) law() string {
	lawType := g.pick([]string{
		"Закон Респ. Беларусь",
		"Декрет Президента Респ. Беларусь",
		"Указ Президента Респ. Беларусь",
		"постановление Совета Министров Респ. Беларусь",
		"приказ М-ва юстиции Респ. Беларусь",
		"постановление М-ва здравоохранения Респ. Беларусь",
	})
	title := g.pick(lawTitles)
	num := g.faker.Number(1, 500)

	switch g.faker.Number(0, 2) {
	case 0:
		return fmt.Sprintf("%s : %s, %s, № %d // Нац. реестр правовых актов Респ. Беларусь. – %d. – № %d. – Ст. %d.",
			title, lawType, g.date(), num, g.year(), g.faker.Number(1, 12), g.faker.Number(1, 500))
	case 1:
		return fmt.Sprintf("%s : %s, %s, № %d-З // Ведамасцi Нац. сходу Рэсп. Беларусь. – %d. – № %d. – Арт. %d.",
			title, lawType, g.date(), num, g.year(), g.faker.Number(1, 12), g.faker.Number(100, 500))
	default:
		return fmt.Sprintf("%s : утв. постановлением М-ва юстиции Респ. Беларусь %d %s %d, № %d. – Мн. : Нац. центр правовой информ. Респ. Беларусь, %d. – %d с.",
			title, g.faker.Number(1, 28), g.pick(monthsGenitive), g.year(), num, g.year(), g.faker.Number(50, 200))
	}
}

func (g *Generator) standard() string {
	title := g.pick([]string{
		"Система стандартов по информации",
		"Общие технические требования",
		"Методы испытаний",
		"Правила приемки",
		"Технические условия",
		"Нормы проектирования",
	})
	return fmt.Sprintf("%s : %s %d-%d. – Введ. %s. – %s : %s, %d. – %d с.",
		title, g.pick(standardPrefixes), g.faker.Number(1, 9999), g.year(), g.dateShort(),
		g.pick(citiesBelarus), g.pick([]string{"Госстандарт", "Бел. гос. ин-т стандартизации и сертификации"}),
		g.year(), g.faker.Number(3, 50))
}

func (g *Generator) patent() string {
	var ptype string
	switch g.faker.Number(0, 3) {
	case 0:
		ptype = fmt.Sprintf("пат. BY %d", g.faker.Number(10000, 99999))
	case 1:
		ptype = fmt.Sprintf("а. с. SU %d", g.faker.Number(100000, 999999))
	case 2:
		ptype = fmt.Sprintf("полез. модель RU %d", g.faker.Number(10000, 99999))
	default:
		ptype = fmt.Sprintf("пат. RU %d", g.faker.Number(1000000, 9999999))
	}

	var inventors string
	for i, n := 0, g.faker.Number(1, 5); i < n; i++ {
		surname, ini := g.author()
		if i > 0 {
			inventors += ", "
		}
		inventors += ini + " " + surname
	}

	return fmt.Sprintf("%s : %s / %s. – Опубл. %s.", g.pick(patentTitles), ptype, inventors, g.dateShort())
}

func (g *Generator) dissertation() string {
	surname, ini := g.author()
	degree := g.pick([]string{"дис. ... канд.", "дис. ... д-ра", "дыс. ... канд."})
	return fmt.Sprintf("%s, %s %s : %s %s : %s / %s %s. – %s, %d. – %d л.",
		surname, ini, g.pick(dissertationTopics), degree, g.pick(scienceBranches),
		g.pick(specialtyCodes), ini, surname, g.pick(citiesBelarus), g.year(), g.faker.Number(120, 300))
}

func (g *Generator) abstract() string {
	surname, ini := g.author()
	degree := g.pick([]string{"автореф. дис. ... канд.", "автореф. дис. ... д-ра"})
	fullName := fmt.Sprintf("%s %s %s", surname,
		g.pick([]string{"Александр", "Елена", "Сергей", "Наталья", "Владимир", "Ольга"}),
		g.pick([]string{"Викторович", "Александровна", "Николаевич", "Владимировна", "Петрович", "Сергеевна"}))
	return fmt.Sprintf("%s, %s %s : %s %s : %s / %s ; %s. – %s, %d. – %d с.",
		surname, ini, g.pick(dissertationTopics), degree, g.pick(scienceBranches),
		g.pick(specialtyCodes), fullName, g.pick(organizations), g.pick(citiesBelarus),
		g.year(), g.faker.Number(20, 50))
}

func (g *Generator) conference() string {
	city := g.pick(citiesBelarus)
	day1 := g.faker.Number(1, 20)
	return fmt.Sprintf("%s : %s %s %s, %s, %d–%d %s %d г. / %s. – %s : %s, %d. – %d с.",
		g.pick(conferenceTitles),
		g.pick([]string{"материалы", "сб. ст.", "тезисы докл."}),
		g.pick([]string{"Междунар.", "Респ.", "регион."}),
		g.pick([]string{"науч. конф.", "науч.-практ. конф.", "науч. конф. аспирантов, магистрантов и студентов"}),
		city, day1, day1+g.faker.Number(1, 5), g.pick(monthsGenitive), g.year(),
		g.pick(organizations), city, g.pick(publishersBelarus), g.year(), g.faker.Number(50, 500))
}

func (g *Generator) electronicResource() string {
	sites := []struct{ title, url string }{
		{"Национальный правовой Интернет-портал Республики Беларусь", "http://www.pravo.by"},
		{"Официальный сайт Президента Республики Беларусь", "http://www.president.gov.by"},
		{"Национальный статистический комитет Республики Беларусь", "http://www.belstat.gov.by"},
		{"Министерство образования Республики Беларусь", "http://www.edu.gov.by"},
		{"Научная электронная библиотека", "http://www.elibrary.ru"},
		{"Электронная библиотека диссертаций", "http://www.dissercat.com"},
	}
	site := sites[g.faker.Number(0, len(sites)-1)]

	if g.faker.Bool() {
		return fmt.Sprintf("%s [Электронный ресурс]. – Режим доступа: %s. – Дата доступа: %s.",
			site.title, site.url, g.dateShort())
	}
	return fmt.Sprintf("%s : [сайт]. – Мн., 2003–2025. – URL: %s (дата обращения: %s).",
		site.title, site.url, g.dateShort())
}

func (g *Generator) newspaperArticle() string {
	surname, ini := g.author()
	start := g.faker.Number(1, 15)
	return fmt.Sprintf("%s, %s %s / %s %s // %s. – %d. – %d %s – С. %d–%d.",
		surname, ini, g.pick(articleTitles), ini, surname, g.pick(newspapers),
		g.year(), g.faker.Number(1, 28), g.pick(monthsGenitive), start, start+g.faker.Number(1, 5))
}

func (g *Generator) preprint() string {
	surname, ini := g.author()
	org := g.pick(organizations)
	return fmt.Sprintf("%s, %s %s / %s %s. – %s : %s, %d. – %d с. – (Препринт / %s ; № %d).",
		surname, ini, g.pick(articleTitles), ini, surname, g.pick(citiesBelarus), org,
		g.year(), g.faker.Number(10, 30), org, g.faker.Number(1, 50))
}

func (g *Generator) multimedia() string {
	surname, ini := g.author()
	return fmt.Sprintf("%s, %s %s %s / %s %s. – %s : %s, %d. – %s.",
		surname, ini,
		g.pick([]string{"Симфония", "Концерт", "Музыкальные вечера", "Народные песни", "Классическая музыка", "Джазовые композиции"}),
		g.pick([]string{"[Звукозапись]", "[Видеозапись]"}),
		ini, surname, g.pick(citiesBelarus), g.pick(publishersBelarus), g.year(),
		g.pick([]string{"1 зв. диск", "1 CD-ROM", "1 DVD video", "1 диск"}))
}

func (g *Generator) mapSheet() string {
	return fmt.Sprintf("%s [Карты] : [%s]. – %s. – %s : %s, %d. – 1 к.",
		g.pick([]string{"Беларусь", "Европа", "Минская область", "Гомельская область", "Брестская область", "Гродненская область"}),
		g.pick([]string{"полит.-адм. карта", "физ. карта", "турист. карта", "автомоб. карта"}),
		g.pick([]string{"1 : 500 000", "1 : 1 000 000", "1 : 2 500 000", "1 : 10 500 000"}),
		g.pick(citiesBelarus),
		g.pick([]string{"Белкартография", "АГТ Геоцентр", "Белгеодезия"}),
		g.year())
}

func (g *Generator) musicScore() string {
	surname, ini := g.author()
	return fmt.Sprintf("%s, %s %s [Ноты] : %s / %s %s. – %s : %s, %d. – %d с.",
		surname, ini,
		g.pick([]string{"Романсы", "Сонаты", "Прелюдии", "Этюды", "Вальсы", "Полонезы", "Регтаймы"}),
		g.pick([]string{"для фортепиано", "для скрипки с фортепиано", "для тенора с фортепиано", "для хора", "для оркестра"}),
		ini, surname, g.pick(citiesBelarus),
		g.pick([]string{"Белорус. гос. акад. музыки", "Лань", "Планета музыки"}),
		g.year(), g.faker.Number(20, 100))
}

func (g *Generator) visualMaterial() string {
	return fmt.Sprintf("%s : %s. – %s : %s, %d. – 1 л.",
		g.pick([]string{"С праздником!", "Поздравляем!", "9 мая. С праздником Победы!", "С Новым годом!", "Белорусские пейзажи"}),
		g.pick([]string{"[плакат]", "[открытка]", "[репродукция]"}),
		g.pick(citiesBelarus),
		g.pick([]string{"Полиграфкомбинат им. Я. Коласа", "Нац. б-ка Беларуси", "Белпринт"}),
		g.year())
}

func (g *Generator) archive() string {
	archive := g.pick([]string{
		"Архив суда Ленинского района г. Минска",
		"Национальный архив Республики Беларусь",
		"Архив Министерства внутренних дел Республики Беларусь",
		"Государственный архив Минской области",
	})
	if g.faker.Bool() {
		year := g.faker.Number(2000, 2020)
		return fmt.Sprintf("%s за %d г. – Уголовное дело № %d/%02d (%d).",
			archive, year, g.faker.Number(1, 999), year%100, g.faker.Number(1, 20))
	}
	return fmt.Sprintf("%s. – Ф. %d. Оп. %d. Д. %d. Л. %d.",
		archive, g.faker.Number(1, 100), g.faker.Number(1, 10), g.faker.Number(1, 100), g.faker.Number(1, 300))
}

func (g *Generator) researchReport() string {
	leaderSurname, leaderIni := g.author()
	var executors string
	for i, n := 0, g.faker.Number(2, 4); i < n; i++ {
		surname, ini := g.author()
		if i > 0 {
			executors += ", "
		}
		executors += ini + " " + surname
	}
	return fmt.Sprintf("%s : отчет о НИР (заключ.) / %s ; рук. %s %s ; исполн.: %s. – %s, %d. – %d с. – № ГР %d%d.",
		g.pick(articleTitles), g.pick(organizations), leaderIni, leaderSurname, executors,
		g.pick(citiesBelarus), g.year(), g.faker.Number(50, 300),
		g.faker.Number(2015, 2020), g.faker.Number(1000, 9999))
}

func (g *Generator) deposited() string {
	surname, ini := g.author()
	return fmt.Sprintf("%s, %s %s / %s %s ; %s. – %s, %d. – %d с. – Деп. в %s %s, № %d.",
		surname, ini, g.pick(articleTitles), ini, surname, g.pick(organizations),
		g.pick(citiesBelarus), g.faker.Number(2010, 2020), g.faker.Number(10, 50),
		g.pick([]string{"ИНИОН РАН", "ВИНИТИ", "БелИСА"}), g.dateShort(), g.faker.Number(50000, 70000))
}

func (g *Generator) multivolume() string {
	surname, ini := g.author()
	volumes := g.faker.Number(2, 10)
	yearStart := g.faker.Number(2010, 2020)
	return fmt.Sprintf("%s, %s %s : у %d т. / %s %s. – %s : %s, %d–%d. – %d т.",
		surname, ini,
		g.pick([]string{"Полное собрание сочинений", "Избранные труды", "Собрание сочинений", "Поўны збор твораў", "История Беларуси"}),
		volumes, ini, surname, g.pick(citiesBelarus), g.pick(publishersBelarus),
		yearStart, yearStart+g.faker.Number(1, 5), volumes)
}

func (g *Generator) review() string {
	surname, ini := g.author()
	reviewedSurname, reviewedIni := g.author()
	start := g.faker.Number(50, 150)
	year := g.year()
	return fmt.Sprintf("%s, %s [Рецензия] / %s %s // %s. – %d. – № %d. – С. %d–%d. – Рец. на кн.: %s / %s %s. – %s : %s, %d. – %d с.",
		surname, ini, ini, surname, g.pick(journals), year, g.faker.Number(1, 12),
		start, start+g.faker.Number(2, 5), g.pick(bookTitles), reviewedIni, reviewedSurname,
		g.pick(citiesBelarus), g.pick(publishersBelarus), year-g.faker.Number(0, 2), g.faker.Number(50, 600))
}

func (g *Generator) catalog() string {
	var compilers string
	for i, n := 0, g.faker.Number(1, 2); i < n; i++ {
		surname, ini := g.author()
		if i > 0 {
			compilers += ", "
		}
		compilers += ini + " " + surname
	}
	editorSurname, editorIni := g.author()
	return fmt.Sprintf("%s / %s ; сост.: %s ; отв. ред. %s %s. – %s : %s, %d. – %d с.",
		g.pick([]string{"Каталог инновационных разработок", "Каталог древесных растений", "Каталог продукции", "Каталог научных изданий"}),
		g.pick(organizations), compilers, editorIni, editorSurname,
		g.pick(citiesBelarus), g.pick(publishersBelarus), g.year(), g.faker.Number(100, 500))
}

func (g *Generator) methodicalGuide() string {
	surname, ini := g.author()
	return fmt.Sprintf("%s : %s %s / %s ; сост. %s %s. – %s : %s, %d. – %d с.",
		g.pick([]string{"Математика", "Физика", "Химия", "Программирование", "Экономика", "Право"}),
		g.pick([]string{"метод. указания", "метод. рекомендации"}),
		g.pick([]string{"к практ. занятиям", "к лаб. работам", "к курсовому проектированию", "к дипломному проектированию"}),
		g.pick(organizations), ini, surname,
		g.pick(citiesBelarus), g.pick(publishersBelarus), g.year(), g.faker.Number(20, 80))
}
