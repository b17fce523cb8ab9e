package limitread_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/javi11/limitread"
)

func ExampleReader_Lines() {
	r, err := limitread.NewReader(strings.NewReader("alpha\nbeta\r\ngamma"))
	if err != nil {
		panic(err)
	}

	lines := r.Lines(1024)
	for lines.Next() {
		fmt.Println(lines.Text())
	}
	if err := lines.Err(); err != nil {
		panic(err)
	}
	// Output:
	// alpha
	// beta
	// gamma
}

func ExampleReader_ReadUntil() {
	r, err := limitread.NewReader(strings.NewReader("host=example.com;port=119;"))
	if err != nil {
		panic(err)
	}

	var field bytes.Buffer
	n, err := r.ReadUntil(';', &field, 64)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%d bytes: %s\n", n, field.String())
	// Output:
	// 17 bytes: host=example.com;
}

func ExampleReader_Split_maxLength() {
	// A peer that never sends the delimiter within the bound cannot make a
	// single record grow without limit.
	r, err := limitread.NewReader(strings.NewReader("ok;" + strings.Repeat("x", 1000) + ";"))
	if err != nil {
		panic(err)
	}

	for rec, err := range r.Split(';', 16).All() {
		if err != nil {
			fmt.Println("stopped:", errors.Is(err, limitread.ErrSizeExceeded))
			break
		}
		fmt.Println("record:", string(rec))
	}
	// Output:
	// record: ok
	// stopped: true
}
