package musou

// Wallet is the score currency. Kills add to it, abilities spend from it.
// The balance never goes negative.
type Wallet struct {
	balance int
}

// NewWallet creates a wallet with the given starting balance.
func NewWallet(start int) Wallet {
	return Wallet{balance: max(start, 0)}
}

// Balance returns the current score.
func (w Wallet) Balance() int {
	return w.balance
}

// Earn adds a kill reward.
func (w *Wallet) Earn(points int) {
	if points > 0 {
		w.balance += points
	}
}

// Spend deducts cost if the balance covers it. A refused spend leaves the
// balance untouched.
func (w *Wallet) Spend(cost int) bool {
	if cost < 0 || w.balance < cost {
		return false
	}
	w.balance -= cost
	return true
}
