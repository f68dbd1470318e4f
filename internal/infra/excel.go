package infra

// excel.go — XLSX export of pedidos using excelize. One row per pedido with
// owner, mesa, estado, totals and payment count; a summary row at the bottom.

import (
	"bytes"
	"fmt"

	"github.com/larrykatula12/restaurante/internal/model"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// GeneratePedidosXLSX renders the given pedidos (with Usuario, Mesa and Pagos
// loaded) as an in-memory XLSX workbook.
func GeneratePedidosXLSX(pedidos []model.Pedido, fecha string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Pedidos"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Fecha", "Usuario", "Mesa", "Estado", "Items", "Pagos", "Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	totalGeneral := decimal.Zero
	for i, p := range pedidos {
		row := i + 2
		usuario := ""
		if p.Usuario != nil {
			usuario = p.Usuario.NombreCompleto
		}
		mesa := ""
		if p.Mesa != nil {
			mesa = fmt.Sprintf("%d", p.Mesa.NumeroMesa)
		}
		total, _ := p.Total.Float64()
		values := []interface{}{
			p.ID,
			p.FechaHora.Format("2006-01-02 15:04"),
			usuario,
			mesa,
			p.Estado,
			len(p.Detalles),
			len(p.Pagos),
			total,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
		totalGeneral = totalGeneral.Add(p.Total)
	}

	// Summary row
	sumRow := len(pedidos) + 3
	labelCell, _ := excelize.CoordinatesToCellName(7, sumRow)
	totalCell, _ := excelize.CoordinatesToCellName(8, sumRow)
	_ = f.SetCellValue(sheet, labelCell, "Total "+fecha)
	sum, _ := totalGeneral.Float64()
	_ = f.SetCellValue(sheet, totalCell, sum)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: write buffer: %w", err)
	}
	return buf, nil
}
