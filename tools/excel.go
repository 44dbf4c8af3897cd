package tools

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/xuri/excelize/v2"
)

type column struct {
	index  []int
	header string
}

// columns 按 excel 标签收集导出列，匿名嵌入的结构体展开，标签为 "-" 的跳过
func columns(t reflect.Type, parent []int) []column {
	var out []column
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		idx := append(append([]int(nil), parent...), i)
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			out = append(out, columns(sf.Type, idx)...)
			continue
		}
		tag := sf.Tag.Get("excel")
		if tag == "-" {
			continue
		}
		if tag == "" {
			tag = sf.Name
		}
		out = append(out, column{index: idx, header: tag})
	}
	return out
}

func cellValue(fv reflect.Value) any {
	switch fv.Kind() {
	case reflect.Ptr:
		if fv.IsNil() {
			return ""
		}
		return cellValue(fv.Elem())
	case reflect.Slice:
		if fv.Type().Elem().Kind() == reflect.String {
			return strings.Join(fv.Convert(reflect.TypeOf([]string(nil))).Interface().([]string), "\n")
		}
		return fmt.Sprint(fv.Interface())
	default:
		return fv.Interface()
	}
}

// ExportToExcel 把结构体切片写入 sheet，首行为表头。空切片只写表头
func ExportToExcel(f *excelize.File, sheet string, data any) error {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return fmt.Errorf("data %T 不是切片", data)
	}
	elemType := v.Type().Elem()
	if elemType.Kind() == reflect.Ptr {
		elemType = elemType.Elem()
	}
	if elemType.Kind() != reflect.Struct {
		return fmt.Errorf("data %T 不是结构体切片", data)
	}

	if sheet == "" {
		sheet = "Sheet1"
	}
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}

	cols := columns(elemType, nil)
	header := make([]any, len(cols))
	for i, col := range cols {
		header[i] = col.header
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	rowNum := 2
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		if elem.Kind() == reflect.Ptr {
			if elem.IsNil() {
				continue
			}
			elem = elem.Elem()
		}
		row := make([]any, len(cols))
		for j, col := range cols {
			row[j] = cellValue(elem.FieldByIndex(col.index))
		}
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
		rowNum++
	}
	return nil
}
