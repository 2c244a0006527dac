package models

// Transaction: денежный перевод между пользователями.
// Date хранится строкой в том виде, в каком её прислал клиент.
type Transaction struct {
	ID       string  `json:"id"`
	Sender   string  `json:"sender"`
	Receiver string  `json:"receiver"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}

// TransactionUpdate: частичное обновление перевода.
type TransactionUpdate struct {
	Sender   *string  `json:"sender,omitempty"`
	Receiver *string  `json:"receiver,omitempty"`
	Amount   *float64 `json:"amount,omitempty"`
	Date     *string  `json:"date,omitempty"`
}

func (u TransactionUpdate) IsEmpty() bool {
	return len(u.Fields()) == 0
}

// Fields перечисляет заданные поля перевода.
func (u TransactionUpdate) Fields() []Field {
	var out []Field
	if u.Sender != nil {
		out = append(out, Field{Name: "sender", Value: *u.Sender})
	}
	if u.Receiver != nil {
		out = append(out, Field{Name: "receiver", Value: *u.Receiver})
	}
	if u.Amount != nil {
		out = append(out, Field{Name: "amount", Value: *u.Amount})
	}
	if u.Date != nil {
		out = append(out, Field{Name: "date", Value: *u.Date})
	}

	return out
}
