package normalization

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "пробел после тире",
			input: "Василевич, Г. А. Конституционное право. – Минск. –Амалфея, 2013.",
			want:  "Василевич, Г. А. Конституционное право. – Минск. – Амалфея, 2013.",
		},
		{
			name:  "диапазон с пробелами с двух сторон",
			input: "С. 45 – 52.",
			want:  "С. 45–52.",
		},
		{
			name:  "диапазон с пробелом слева",
			input: "С. 45 –52.",
			want:  "С. 45–52.",
		},
		{
			name:  "диапазон с пробелом справа",
			input: "С. 45– 52.",
			want:  "С. 45–52.",
		},
		{
			name:  "многоточие в диссертации сохраняется",
			input: "Иванов, И. И. Название : дис. ... канд. юрид. наук : 12.00.02 / И. И. Иванов. – Минск, 2020. – 120 л.",
			want:  "Иванов, И. И. Название : дис. ... канд. юрид. наук : 12.00.02 / И. И. Иванов. – Минск, 2020. – 120 л.",
		},
		{
			name:  "двойная точка после сокращения",
			input: "Весці Нац. акад. навук Беларусі. Сер. гуманітар. навук. Журн.. – 2019.",
			want:  "Весці Нац. акад. навук Беларусі. Сер. гуманітар. навук. Журн. – 2019.",
		},
		{
			name:  "двойные пробелы",
			input: "Минск :  Амалфея,  2013.",
			want:  "Минск : Амалфея, 2013.",
		},
		{
			name:  "пробел после двоеточия",
			input: "Минск :Амалфея, 2013.",
			want:  "Минск : Амалфея, 2013.",
		},
		{
			name:  "двоеточие в URL не трогаем",
			input: "Режим доступа: http://www.pravo.by. – Дата доступа: 24.06.2024.",
			want:  "Режим доступа: http://www.pravo.by. – Дата доступа: 24.06.2024.",
		},
		{
			name:  "пробел после инициалов",
			input: "Киселёв, М. Ю.Информационные технологии / М. Ю. Киселёв.",
			want:  "Киселёв, М. Ю. Информационные технологии / М. Ю. Киселёв.",
		},
		{
			name:  "пробел после номера",
			input: "Полымя. – 2019. – №5. – С. 88–91.",
			want:  "Полымя. – 2019. – № 5. – С. 88–91.",
		},
		{
			name:  "пробел после тома и выпуска",
			input: "Т.12, Вып.3, кн.2.",
			want:  "Т. 12, Вып. 3, кн. 2.",
		},
		{
			name:  "пробел перед точкой и запятой",
			input: "Минск : Амалфея , 2013 .",
			want:  "Минск : Амалфея, 2013.",
		},
		{
			name:  "дефис в диапазоне лет переписывается на тире",
			input: "Собрание сочинений. 1995-2005 гг.",
			want:  "Собрание сочинений. 1995–2005 гг.",
		},
		{
			name:  "номер стандарта не трогаем",
			input: "ГОСТ 7.1-2003. Библиографическая запись.",
			want:  "ГОСТ 7.1-2003. Библиографическая запись.",
		},
		{
			name:  "тире перед числовым диапазоном не разрывается",
			input: "Право.by. – 2018. – № 4. – С. 45–52.",
			want:  "Право.by. – 2018. – № 4. – С. 45–52.",
		},
		{
			name:  "тире, открывающее числовой диапазон, не отделяется пробелом",
			input: "Право. –45–52.",
			want:  "Право. –45–52.",
		},
		{
			name:  "тире перед одиночным числом получает пробел",
			input: "Минск. –2013.",
			want:  "Минск. – 2013.",
		},
		{
			name:  "пустая строка",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Повторная нормализация не должна менять уже нормализованный текст.
func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Василевич, Г. А. Конституционное право Республики Беларусь : учеб.-метод. пособие / Г. А. Василевич. – Минск : Амалфея, 2013. – 415 с.",
		"Лукашов, А. И. Актуальные вопросы уголовного права / А. И. Лукашов // Право.by. – 2019. – № 5. – С. 88–91.",
		"Иванов, И. И. Тема : дис. ... канд. наук : 07.00.09 / И. И. Иванов. – Минск, 2020. – 150 л.",
		"О нормативных правовых актах : Закон Респ. Беларусь от 17 июля 2018 г. № 130-З // Нац. реестр правовых актов Респ. Беларусь. – 2018.",
		"ГОСТ 7.1-2003. Библиографическая запись. Библиографическое описание. – Минск : БелГИСС, 2004. – 48 с.",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("нормализация не идемпотентна:\n первый проход: %q\n второй проход: %q", once, twice)
		}
	}
}

func TestNormalizeWithIssues(t *testing.T) {
	// Пара четырёхзначных чисел, не похожая на диапазон лет, остаётся
	// нетронутой и попадает в замечания.
	text := "СТБ 1500-1234. Название стандарта."
	got, issues := NormalizeWithIssues(text)
	if got != text {
		t.Errorf("текст изменился: %q", got)
	}
	if len(issues) != 1 || issues[0].Code != IssueAmbiguousRange {
		t.Errorf("ожидалось одно замечание ambiguous_range, получено %v", issues)
	}
}

func TestRuleOrder(t *testing.T) {
	// Правило про диапазоны стоит после правила про пробел после тире,
	// иначе "С. 45 – 52" после вставки пробела снова бы разъехалось.
	var dashIdx, rangeIdx int
	for i, r := range Rules {
		switch r.Name {
		case "space_after_dash":
			dashIdx = i
		case "tighten_numeric_ranges":
			rangeIdx = i
		}
	}
	if dashIdx >= rangeIdx {
		t.Errorf("space_after_dash (%d) должно идти раньше tighten_numeric_ranges (%d)", dashIdx, rangeIdx)
	}
}

func TestCheckPunctuation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []IssueCode
	}{
		{
			name:  "чистая запись",
			input: "Василевич, Г. А. Конституционное право / Г. А. Василевич. – Минск : Амалфея, 2013. – 415 с.",
			want:  nil,
		},
		{
			name:  "нет пробела после тире",
			input: "Минск. –Амалфея, 2013.",
			want:  []IssueCode{IssueMissingSpaceAfterDash},
		},
		{
			name:  "нет пробела после двоеточия",
			input: "Минск :Амалфея, 2013.",
			want:  []IssueCode{IssueMissingSpaceAfterColon},
		},
		{
			name:  "инициалы слиплись",
			input: "Василевич, Г. А.Конституционное право.",
			want:  []IssueCode{IssueMissingSpaceAfterInitials},
		},
		{
			name:  "пробелы в диапазоне",
			input: "С. 45 – 52.",
			want:  []IssueCode{IssueSpaceInRange},
		},
		{
			name:  "двойной пробел",
			input: "Минск :  Амалфея.",
			want:  []IssueCode{IssueDoubleSpace},
		},
		{
			name:  "дефис в диапазоне лет",
			input: "Летопись 1995-2005 годов.",
			want:  []IssueCode{IssueAmbiguousRange},
		},
		{
			name:  "номер стандарта не считается диапазоном",
			input: "ГОСТ 7.1-2003.",
			want:  nil,
		},
		{
			name:  "дефис в диапазоне страниц",
			input: "С. 45-52.",
			want:  []IssueCode{IssueHyphenInPageRange},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := CheckPunctuation(tt.input)
			var got []IssueCode
			for _, issue := range issues {
				got = append(got, issue.Code)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("CheckPunctuation() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("замечание %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
