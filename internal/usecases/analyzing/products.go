package analyzing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vfg2006/sales-analytics/internal/domain"
)

// ParseProducts lê uma lista no formato [produto:qtd|produto:qtd].
// Entradas vazias são ignoradas. Na primeira entrada inválida a leitura para e
// retorna os itens já lidos junto com o erro.
func ParseProducts(value string) ([]domain.ProductLine, error) {
	body := strings.TrimSpace(value)
	body = strings.TrimPrefix(body, "[")
	body = strings.TrimSuffix(body, "]")

	products := make([]domain.ProductLine, 0)
	for _, entry := range strings.Split(body, "|") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		product, err := parseProductEntry(entry)
		if err != nil {
			return products, err
		}
		products = append(products, product)
	}

	return products, nil
}

func parseProductEntry(entry string) (domain.ProductLine, error) {
	productID, rawQuantity, found := strings.Cut(entry, ":")
	if !found {
		return domain.ProductLine{}, fmt.Errorf("%w: %q has no quantity", ErrProductEntryParse, entry)
	}

	productID = strings.TrimSpace(productID)
	if productID == "" {
		return domain.ProductLine{}, fmt.Errorf("%w: %q has no product id", ErrProductEntryParse, entry)
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(rawQuantity))
	if err != nil {
		return domain.ProductLine{}, fmt.Errorf("%w: %q: %v", ErrProductEntryParse, entry, err)
	}
	if quantity < 0 {
		return domain.ProductLine{}, fmt.Errorf("%w: %q has negative quantity", ErrProductEntryParse, entry)
	}

	return domain.ProductLine{ProductID: productID, Quantity: quantity}, nil
}
