package natural_test

import (
	"fmt"

	"github.com/katalvlaran/lvcollect/natural"
)

func ExampleStrings() {
	names := []string{"img12.png", "img10.png", "IMG2.png", "img1.png"}
	natural.Strings(names)
	fmt.Println(names)
	// Output: [img1.png IMG2.png img10.png img12.png]
}
