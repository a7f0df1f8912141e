package ports

import "context"

// AddressLookup puerto de salida hacia el directorio externo de tiendas.
// Busca la dirección postal de una tienda por su nombre comercial.
// found=false sin error significa que el directorio no tiene la tienda.
// Los llamadores deben tolerar errores: la dirección es un dato opcional.
type AddressLookup interface {
	FindAddressByStoreName(ctx context.Context, storeName string) (address string, found bool, err error)
}
