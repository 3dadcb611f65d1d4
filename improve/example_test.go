package improve_test

import (
	"fmt"

	"github.com/npillmayer/arnorm/improve"
)

func ExampleImproveText() {
	fmt.Println(improve.ImproveText("قال : هذا    بيت , و ذلك (  كتـــاب  ) ?"))
	// Output: قال: هذا بيت، وذلك (كتاب)؟
}
