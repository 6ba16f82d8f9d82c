package entity

// Evaluation результат оценки пароля. Значение только для чтения: Feedback
// выделяется заново при каждой оценке, но изменять его вызывающим нельзя.
type Evaluation struct {
	Score       int        `json:"score"` // может уйти в минус из-за штрафов
	Strength    Strength   `json:"strength"`
	Feedback    []Feedback `json:"feedback"` // в порядке выполнения проверок
	EntropyBits float64    `json:"entropyBits"`
	CrackTime   CrackTime  `json:"crackTime"`
	Length      int        `json:"length"` // количество символов, не байт
}

// Passed сообщает, прошла ли проверка check без замечаний.
// Проверка повторов пишет фидбек только при провале, поэтому
// отсутствие записи тоже считается успехом.
func (e Evaluation) Passed(check Check) bool {
	for _, f := range e.Feedback {
		if f.Check == check {
			return f.Severity == SeverityOK
		}
	}

	return true
}
