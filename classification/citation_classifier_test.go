package classification

import (
	"testing"

	"gostformatter/normalization"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Category
	}{
		{
			name:  "книга с одним автором",
			input: "Дробышевский, Н. П. Ревизия и аудит : учеб.-метод. пособие / Н. П. Дробышевский. – Минск : Амалфея, 2013. – 415 с.",
			want:  BookFewAuthors,
		},
		{
			name:  "книга четырех и более авторов по пометке",
			input: "Закономерности формирования системы движений / В. А. Боровая [и др.]. – Гомель : ГГУ, 2013. – 173 с.",
			want:  BookManyAuthors,
		},
		{
			name:  "статья в журнале",
			input: "Валатоўская, Н. А. Традыцыйны вясельны абрад / Н. А. Валатоўская // Нар. асвета. – 2013. – № 5. – С. 88–91.",
			want:  JournalArticle,
		},
		{
			name:  "статья в газете",
			input: "Берникович, Д. Агрогородок Германовичи / Д. Берникович // Сельская газета. – 2023. – 3 окт. – С. 1, 8–9.",
			want:  NewspaperArticle,
		},
		{
			name:  "статья в сборнике",
			input: "Божанов, П. В. Направления развития транспорта / П. В. Божанов // Современные концепции : сб. ст. / БГУ. – Минск, 2014. – С. 56–64.",
			want:  CollectionArticle,
		},
		{
			name:  "диссертация",
			input: "Врублеўскі, Ю. У. Гістарыяграфія гісторыі : дыс. ... канд. гіст. навук : 07.00.09 / Ю. У. Врублеўскі. – Мінск, 2013. – 148 л.",
			want:  Dissertation,
		},
		{
			name:  "автореферат классифицируется как диссертация из-за маркера дис",
			input: "Горянов, А. В. Эволюция усадьбы : автореф. дис. ... канд. ист. наук : 07.00.02 / Горянов Алексей Викторович ; МГУ. – М., 2013. – 40 с.",
			want:  Dissertation,
		},
		{
			name:  "автореферат без маркера дис",
			input: "Горянов, А. В. Эволюция усадьбы : автореф. : 07.00.02 / Горянов Алексей Викторович ; МГУ. – М., 2013. – 40 с.",
			want:  Abstract,
		},
		{
			name:  "закон",
			input: "О государственном регулировании : Закон Респ. Беларусь, 26 лют. 1997 г., № 22-З // Ведамасцi Нац. сходу. – 1997. – № 16. – Арт. 297.",
			want:  Law,
		},
		{
			name:  "кодекс",
			input: "Гражданский кодекс Республики Беларусь : 7 дек. 1998 г., № 218-З. – Минск : Амалфея, 2020. – 752 с.",
			want:  Law,
		},
		{
			name:  "стандарт",
			input: "Система стандартов : ГОСТ 7.22-2003. – Введ. РБ 01.07.04. – Минск : БелГИСС, 2004. – 3 с.",
			want:  Standard,
		},
		{
			name:  "патент",
			input: "Аспирационный счетчик ионов : а. с. SU 935780 / Б. Н. Блинов, А. В. Шолух. – Опубл. 15.06.1982.",
			want:  Patent,
		},
		{
			name:  "материалы конференции",
			input: "Информационные технологии : материалы 49 науч. конф., Минск, 6–10 мая 2013 г. / БГУИР. – Минск : БГУИР, 2013. – 103 с.",
			want:  Conference,
		},
		{
			name:  "электронный ресурс",
			input: "Национальный правовой Интернет-портал Республики Беларусь [Электронный ресурс]. – Режим доступа: http://www.pravo.by. – Дата доступа: 24.06.2024.",
			want:  ElectronicResource,
		},
		{
			name:  "препринт",
			input: "Велесницкий, В. Ф. Конечные группы / В. Ф. Велесницкий. – Гомель : ГГУ, 2013. – 15 с. – (Препринт / ГГУ ; № 2).",
			want:  Preprint,
		},
		{
			name:  "звукозапись",
			input: "Филиппов, А. Белая Русь : [звукозапись] / А. Филиппов. – Мн. : Ковчег, 2024. – 1 CD-ROM.",
			want:  Multimedia,
		},
		{
			name:  "карта",
			input: "Беларусь : общегеографическая карта : [карты] / Белкартография. – Минск, 2021. – 1 к.",
			want:  Map,
		},
		{
			name:  "ноты",
			input: "Глебов, Е. Маленький принц : [ноты] / Е. Глебов. – Минск : Беларусь, 2019. – 48 с.",
			want:  MusicScore,
		},
		{
			name:  "изоматериал",
			input: "Беларусь партизанская : [изоматериал] : плакаты / сост. Г. Шутов. – Минск : Беларусь, 2020. – 1 л.",
			want:  VisualMaterial,
		},
		{
			name:  "рецензия",
			input: "Сидоров, С. С. [Рецензия] / С. С. Сидоров // Весці НАН Беларусі. – 2021. – № 2. – С. 120–122. – Рец. на кн.: История Беларуси.",
			want:  Review,
		},
		{
			name:  "депонированная рукопись",
			input: "Петров, П. П. Динамика процессов / П. П. Петров ; БНТУ. – Минск, 2019. – 25 с. – Деп. в ВИНИТИ 12.03.2019, № 45-В2019.",
			want:  Deposited,
		},
		{
			name:  "отчет о НИР",
			input: "Разработка методики : отчет о НИР (заключ.) / БГУ ; рук. А. А. Иванов. – Минск, 2018. – 75 с. – № ГР 20181234.",
			want:  ResearchReport,
		},
		{
			name:  "архивный документ",
			input: "Фонд Минского губернского правления // НИАБ. – Ф. 295. Оп. 1. Д. 1234. Л. 5–7.",
			want:  Archive,
		},
		{
			name:  "многотомное издание",
			input: "Гісторыя Беларусі : у 6 т. / рэдкал.: М. Касцюк (гал. рэд.) [і інш.]. – Мінск : Экаперспектыва, 2000. – Т. 1. – 351 с.",
			want:  Multivolume,
		},
		{
			name:  "методические рекомендации",
			input: "Выполнение курсовых работ : метод. рекомендации / сост. О. О. Орлова. – Витебск : ВГУ, 2022. – 35 с.",
			want:  MethodicalGuide,
		},
		{
			name:  "каталог",
			input: "Каталог белорусских изданий XVI века / Нац. б-ка Беларуси. – Минск : НББ, 2017. – 210 с.",
			want:  Catalog,
		},
		{
			name:  "нет признаков",
			input: "Просто произвольная строка без библиографических признаков",
			want:  Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.input)
			if got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Нормализация пунктуации не должна менять категорию записи.
func TestClassifyStableUnderNormalization(t *testing.T) {
	inputs := []string{
		"Дробышевский, Н. П. Ревизия и аудит : учеб.-метод. пособие / Н. П. Дробышевский. – Минск :Амалфея, 2013. – 415 с.",
		"Валатоўская, Н. А. Традыцыйны вясельны абрад / Н. А. Валатоўская // Нар. асвета. – 2013. – №5. – С. 88 – 91.",
		"Врублеўскі, Ю. У. Гістарыяграфія гісторыі : дыс. ... канд. гіст. навук : 07.00.09 / Ю. У. Врублеўскі. – Мінск, 2013. – 148 л.",
		"Система стандартов : ГОСТ 7.22-2003. – Введ. РБ 01.07.04. – Минск : БелГИСС, 2004. – 3 с.",
	}
	for _, input := range inputs {
		before := Classify(input)
		after := Classify(normalization.Normalize(input))
		if before != after {
			t.Errorf("категория изменилась после нормализации: %q -> %q для %q", before, after, input)
		}
	}
}

func TestCategoryIsValid(t *testing.T) {
	for _, c := range AllCategories {
		if !c.IsValid() {
			t.Errorf("категория %q должна быть известной", c)
		}
	}
	if Category("nonexistent").IsValid() {
		t.Error("неизвестная категория не должна проходить проверку")
	}
}
