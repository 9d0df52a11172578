package unstats

import (
	"educationgdp/lib/restyutil"
	"educationgdp/lib/telemetry"

	"github.com/go-resty/resty/v2"
)

var tracer = telemetry.Tracer("educationgdp.lib.scrapers.unstats")

func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	client = resty.New()
	restyutil.InstrumentClient(client, tracer, out)
}
