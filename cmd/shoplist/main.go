// Command shoplist manages a weekly shopping list split into pickup and
// in-store items.
package main

import "github.com/Redwards2/MeijerShoppingList/internal/cli"

func main() {
	cli.Execute()
}
