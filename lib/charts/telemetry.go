package charts

import "educationgdp/lib/telemetry"

var tracer = telemetry.Tracer("educationgdp.lib.charts")
