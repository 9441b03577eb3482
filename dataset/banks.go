package dataset

// Банки данных для синтетических записей. Составлены по реальным
// примерам оформления с vak.gov.by.

var surnamesRU = []string{
	"Иванов", "Петров", "Сидоров", "Козлов", "Новиков", "Федоров", "Смирнов",
	"Волков", "Кузнецов", "Соколов", "Попов", "Лебедев", "Морозов", "Павлов",
	"Семенов", "Голубев", "Виноградов", "Богданов", "Воробьев", "Михайлов",
	"Егоров", "Никитин", "Соловьев", "Яковлев", "Захаров", "Борисов", "Орлов",
	"Киселев", "Андреев", "Макаров", "Степанов", "Николаев", "Алексеев",
	"Григорьев", "Сергеев", "Романов", "Васильев", "Дмитриев", "Тимофеев",
}

var surnamesBY = []string{
	"Іваноў", "Казлоў", "Новік", "Кавалёў", "Петрыкаў", "Васілеўскі", "Каваленя",
	"Жылінскі", "Шыла", "Краўчанка", "Лукашэвіч", "Дубаневіч", "Багдановіч",
	"Купала", "Колас", "Машэра", "Скарына", "Гусоўскі", "Быкаў", "Караткевіч",
	"Адамовіч", "Гілевіч", "Танк", "Брыль", "Барадулін", "Верабей", "Грачыха",
	"Врублеўскі", "Аляхновіч", "Валатоўская", "Бараноўскі", "Ермакова",
}

var initials = []string{
	"А. В.", "И. П.", "С. Н.", "О. А.", "Н. М.", "В. И.", "Е. П.", "М. А.",
	"Д. В.", "К. С.", "Л. Ф.", "П. В.", "Р. Г.", "Т. А.", "Ю. С.", "Б. Н.",
	"Г. И.", "Ж. К.", "З. М.", "Э. Р.", "В. В.", "А. А.", "Н. Н.", "С. С.",
	"И. И.", "М. М.", "Д. А.", "Л. В.", "О. В.", "Е. А.", "А. Л.", "В. Ф.",
}

var citiesBelarus = []string{
	"Минск", "Мінск", "Мн.", "Гомель", "Брест", "Гродно", "Могилёв", "Витебск", "Горки",
}

var publishersBelarus = []string{
	"Беларуская навука", "Бел. навука", "Вышэйшая школа", "БДУ", "БГУ", "БНТУ",
	"Амалфея", "Аверсэв", "Народная асвета", "Право и экономика", "БГУИР",
	"ГрГМУ", "БрГУ", "ГГУ", "Колорград", "Госстандарт", "Ковчег",
}

var journals = []string{
	"Весці НАН Беларусі", "Вестник БГУ", "Вопросы экономики", "Нар. асвета",
	"Беларуская думка", "Весн. Віцеб. дзярж. ун-та", "Доклады НАН Беларуси",
	"Вестник БНТУ", "Белорус. экон. журн.", "Труды БГТУ", "Проблемы управления",
	"Информатика", "Право.by", "Юстиция Беларуси",
}

var newspapers = []string{
	"Сельская газета", "Совет. Белоруссия", "Белорус. лес. газ.", "Рэспубліка",
	"Звязда", "Народная газета", "SB.BY. Беларусь сегодня", "Белорусская нива",
}

var organizations = []string{
	"НАН Беларуси", "Белорус. гос. ун-т", "Бел. гос. ун-т", "БГУ",
	"Белорус. гос. ун-т информатики и радиоэлектроники", "БГУИР",
	"Бел. нац. техн. ун-т", "БНТУ", "Гомел. гос. ун-т", "ГГУ",
	"Гродн. гос. ун-т", "ГрГУ", "Гродн. гос. мед. ун-т", "ГрГМУ",
	"Брест. гос. ун-т", "БрГУ", "Белорус. гос. пед. ун-т", "БГПУ",
	"Бел. гос. мед. ун-т", "БГМУ", "Бел. гос. с.-х. акад.",
	"Нац. центр правовой информ. Респ. Беларусь", "М-во юстиции Респ. Беларусь",
}

var bookTitles = []string{
	"Основы экономики", "Экономическая теория", "Макроэкономика", "Микроэкономика",
	"Финансовый менеджмент", "Бухгалтерский учет", "Ревизия и аудит",
	"Теория государства и права", "Конституционное право", "Гражданское право",
	"Уголовное право", "Административное право", "Трудовое право",
	"Информационные технологии", "Программирование", "Базы данных",
	"Компьютерные сети", "Искусственный интеллект", "Машинное обучение",
	"Методы исследования", "Математический анализ", "Теоретическая физика",
	"История Беларуси", "Философия", "Социология", "Политология",
	"Психология", "Педагогика", "Лингвистика", "Анатомия человека",
	"Физиология", "Терапия", "Фармакология", "Микробиология",
}

var articleTitles = []string{
	"Анализ данных в современных условиях",
	"Проблемы развития и перспективы",
	"Методологические подходы к исследованию",
	"Современные тенденции развития",
	"Актуальные вопросы и пути решения",
	"Инновационные методы в практике",
	"Теоретические основы и практическое применение",
	"Сравнительный анализ подходов",
	"Особенности функционирования системы",
	"Оптимизация процессов управления",
	"Направления совершенствования механизма",
	"Эффективность применения методов",
	"Роль и значение в современных условиях",
	"Перспективы внедрения инноваций",
	"Комплексный подход к решению проблем",
}

var lawTitles = []string{
	"О государственном регулировании", "Об охране окружающей среды",
	"О защите прав потребителей", "О предпринимательской деятельности",
	"О государственных закупках", "Об образовании", "О здравоохранении",
	"О социальной защите", "О труде и занятости", "О налогообложении",
	"О банках и банковской деятельности", "О ценных бумагах",
	"О местном управлении", "О государственной службе", "О безопасности",
}

var patentTitles = []string{
	"Способ обработки материалов", "Устройство для измерения",
	"Метод определения содержания", "Способ получения композиции",
	"Устройство для автоматизации", "Способ очистки воды",
	"Метод анализа данных", "Устройство контроля параметров",
	"Способ синтеза соединений", "Устройство для диагностики",
	"Метод оптимизации процесса", "Способ защиты информации",
}

var dissertationTopics = []string{
	"Развитие системы управления",
	"Совершенствование методов анализа",
	"Повышение эффективности процессов",
	"Формирование механизма регулирования",
	"Оптимизация структуры организации",
	"Моделирование социально-экономических систем",
	"Разработка инструментария оценки",
	"Исследование закономерностей развития",
}

var conferenceTitles = []string{
	"Актуальные проблемы науки и образования",
	"Инновационные технологии в производстве",
	"Современные методы исследования",
	"Перспективы развития отрасли",
	"Научные достижения молодых ученых",
	"Компьютерные системы и сети",
	"Информационные технологии и управление",
	"Актуальные проблемы дизайна и дизайн-образования",
}

var specialtyCodes = []string{
	"08.00.05", "08.00.01", "12.00.01", "12.00.03", "05.13.01", "05.13.06",
	"07.00.02", "07.00.09", "09.00.01", "10.01.01", "14.01.05", "14.00.27",
	"01.01.02", "01.04.07", "02.00.03", "03.02.08", "17.00.09", "13.00.01",
}

var standardPrefixes = []string{"ГОСТ", "СТБ", "ТКП", "СТБ ISO", "ГОСТ Р", "ТР ТС", "СТП"}

var monthsGenitive = []string{
	"янв.", "февр.", "марта", "апр.", "мая", "июня",
	"июля", "авг.", "сент.", "окт.", "нояб.", "дек.",
}

var scienceBranches = []string{
	"экон. наук", "юрид. наук", "техн. наук", "филол. наук",
	"ист. наук", "мед. наук", "пед. наук", "филос. наук",
}
